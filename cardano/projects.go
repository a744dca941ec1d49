package cardano

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/dan13ram/pos-minter/app"
	"github.com/dan13ram/pos-minter/cardano/util"
	"github.com/dan13ram/pos-minter/common"
	"github.com/dan13ram/pos-minter/models"
)

// ProjectStore resolves the read-only minting configuration of a project.
type ProjectStore interface {
	FindProject(projectId string) (*models.Project, error)
	FindProjectByPolicy(policyId string) (*models.Project, error)
}

type staticProjectStore struct {
	byId     map[string]models.Project
	byPolicy map[string]models.Project
}

func NewStaticProjectStore(projects []models.Project) ProjectStore {
	s := &staticProjectStore{
		byId:     make(map[string]models.Project, len(projects)),
		byPolicy: make(map[string]models.Project, len(projects)),
	}
	for _, project := range projects {
		project.PolicyId = strings.ToLower(project.PolicyId)
		project.OraclePolicyId = strings.ToLower(project.OraclePolicyId)
		s.byId[project.ProjectId] = project
		s.byPolicy[project.PolicyId] = project
	}
	return s
}

func (s *staticProjectStore) FindProject(projectId string) (*models.Project, error) {
	project, ok := s.byId[projectId]
	if !ok {
		return nil, fmt.Errorf("project %q: %w", projectId, ErrNotFound)
	}
	return &project, nil
}

func (s *staticProjectStore) FindProjectByPolicy(policyId string) (*models.Project, error) {
	project, ok := s.byPolicy[strings.ToLower(policyId)]
	if !ok {
		return nil, fmt.Errorf("policy %q: %w", policyId, ErrNotFound)
	}
	return &project, nil
}

// mongoProjectStore reads projects managed outside this service.
type mongoProjectStore struct{}

func NewMongoProjectStore() ProjectStore {
	return &mongoProjectStore{}
}

func (s *mongoProjectStore) findOne(filter bson.M, what string) (*models.Project, error) {
	var project models.Project
	err := app.DB.FindOne(models.CollectionProjects, filter, &project)
	if app.IsNoDocuments(err) {
		return nil, fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", what, err)
	}
	return &project, nil
}

func (s *mongoProjectStore) FindProject(projectId string) (*models.Project, error) {
	return s.findOne(bson.M{"project_id": projectId}, fmt.Sprintf("project %q", projectId))
}

func (s *mongoProjectStore) FindProjectByPolicy(policyId string) (*models.Project, error) {
	return s.findOne(bson.M{"policy_id": strings.ToLower(policyId)}, fmt.Sprintf("policy %q", policyId))
}

// chainedProjectStore asks each store in order and returns the first match.
type chainedProjectStore []ProjectStore

func (c chainedProjectStore) find(lookup func(ProjectStore) (*models.Project, error)) (*models.Project, error) {
	var lastErr error = ErrNotFound
	for _, store := range c {
		project, err := lookup(store)
		if err == nil {
			return project, nil
		}
		lastErr = err
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
	}
	return nil, lastErr
}

func (c chainedProjectStore) FindProject(projectId string) (*models.Project, error) {
	return c.find(func(s ProjectStore) (*models.Project, error) { return s.FindProject(projectId) })
}

func (c chainedProjectStore) FindProjectByPolicy(policyId string) (*models.Project, error) {
	return c.find(func(s ProjectStore) (*models.Project, error) { return s.FindProjectByPolicy(policyId) })
}

// NewProjectStore serves the configured projects, falling back to mongodb when it is set up.
func NewProjectStore() ProjectStore {
	stores := chainedProjectStore{NewStaticProjectStore(app.Config.Projects)}
	if app.DB != nil {
		stores = append(stores, NewMongoProjectStore())
	}
	log.Debug("[PROJECTS] Initialized project store with ", len(app.Config.Projects), " configured projects")
	return stores
}

// parseUtxoRef reads a "<tx hash>#<index>" reference.
func parseUtxoRef(ref string) (util.TxInput, error) {
	hash, index, ok := strings.Cut(ref, "#")
	if !ok {
		return util.TxInput{}, fmt.Errorf("invalid utxo reference %q", ref)
	}
	idx, err := strconv.ParseUint(index, 10, 32)
	if err != nil || len(hash) != 2*common.TxHashLength {
		return util.TxInput{}, fmt.Errorf("invalid utxo reference %q", ref)
	}
	return util.TxInput{TxHash: strings.ToLower(hash), Index: idx}, nil
}
