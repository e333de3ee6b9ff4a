package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/yukikurage/migration-tracker/internal/models"
	"github.com/yukikurage/migration-tracker/internal/repository"
	"gorm.io/gorm"
)

var testToday = time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func boolPtr(b bool) *bool { return &b }

func cloneProject(p models.Project) models.Project {
	p.Assignees = append([]models.ProjectAssignee(nil), p.Assignees...)
	return p
}

// fakeProjectRepo keeps projects newest first, like the GORM repository.
type fakeProjectRepo struct {
	projects []models.Project
	listErr  error
	creates  int
	onCreate func(r *fakeProjectRepo, p *models.Project)
}

func (r *fakeProjectRepo) List() ([]models.Project, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]models.Project, len(r.projects))
	for i, p := range r.projects {
		out[i] = cloneProject(p)
	}
	return out, nil
}

func (r *fakeProjectRepo) FindByID(id string) (*models.Project, error) {
	for _, p := range r.projects {
		if p.ID == id {
			found := cloneProject(p)
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProjectRepo) Create(p *models.Project) error {
	r.creates++
	if r.onCreate != nil {
		r.onCreate(r, p)
	}
	for _, existing := range r.projects {
		if existing.ID == p.ID {
			return fmt.Errorf("%w: %s", repository.ErrDuplicateProjectID, p.ID)
		}
	}
	for i := range p.Assignees {
		p.Assignees[i].ProjectID = p.ID
	}
	p.CreatedAt = time.Now()
	r.projects = append([]models.Project{cloneProject(*p)}, r.projects...)
	return nil
}

func (r *fakeProjectRepo) Update(p *models.Project) error {
	for i, existing := range r.projects {
		if existing.ID == p.ID {
			r.projects[i] = cloneProject(*p)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeProjectRepo) Delete(id string) error {
	for i, existing := range r.projects {
		if existing.ID == id {
			r.projects = append(r.projects[:i], r.projects[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeUserRepo struct {
	users  map[uint64]models.User
	nextID uint64
}

func newFakeUserRepo(users ...models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[uint64]models.User{}}
	for _, u := range users {
		u := u
		if err := r.Create(&u); err != nil {
			panic(err)
		}
	}
	return r
}

func (r *fakeUserRepo) List() ([]models.User, error) {
	users := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, nil
}

func (r *fakeUserRepo) Create(user *models.User) error {
	for _, u := range r.users {
		if u.Username == user.Username {
			return fmt.Errorf("%w: %s", repository.ErrDuplicateUsername, user.Username)
		}
	}
	r.nextID++
	user.ID = r.nextID
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) FindByID(id uint64) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

func (r *fakeUserRepo) FindByUsername(username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			found := u
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByUsernames(usernames []string) ([]models.User, error) {
	var users []models.User
	for _, name := range usernames {
		if u, err := r.FindByUsername(name); err == nil {
			users = append(users, *u)
		}
	}
	return users, nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) Delete(id uint64) error {
	if _, ok := r.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.users, id)
	return nil
}
