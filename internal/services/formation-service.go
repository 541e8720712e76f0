package services

import (
	"context"
	"strings"

	"github.com/projetprice/formation-svc/internal/domain"
	"github.com/projetprice/formation-svc/internal/dto"
	"github.com/projetprice/formation-svc/internal/repository"
	"github.com/projetprice/formation-svc/pkg/utils"
)

const suggestionPreviewLimit = 5

type FormationService interface {
	FindAllPaged(ctx context.Context, page, size int) (*dto.FormationPage, error)
	FindByID(ctx context.Context, id string) (*domain.Formation, error)
	SearchByRegion(ctx context.Context, region string, page, size int) (*dto.FormationPage, error)
	SearchByEstablishmentStatus(ctx context.Context, status string, page, size int) (*dto.FormationPage, error)
	SearchByProgram(ctx context.Context, program string, page, size int) (*dto.FormationPage, error)
	AdvancedSearch(ctx context.Context, params dto.AdvancedSearchParams) (*dto.FormationPage, error)
	RankFormations(ctx context.Context, sortBy, direction string, page, size int) (*dto.FormationPage, error)
	SearchFormations(ctx context.Context, query string) ([]domain.Formation, error)
	GetFieldSuggestions(ctx context.Context, field, query string) ([]string, error)
	SaveFormation(ctx context.Context, formation *domain.Formation) (*domain.Formation, error)
	SaveAll(ctx context.Context, formations []domain.Formation) error
	ComputeAcceptanceRate(formation *domain.Formation) *float64
}

type formationService struct {
	repo repository.FormationRepository
}

func NewFormationService(repo repository.FormationRepository) FormationService {
	return &formationService{repo: repo}
}

func (s *formationService) FindAllPaged(ctx context.Context, page, size int) (*dto.FormationPage, error) {
	return s.paged(ctx, &repository.SearchFilter{}, repository.SortSpec{}, page, size)
}

func (s *formationService) FindByID(ctx context.Context, id string) (*domain.Formation, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *formationService) SearchByRegion(ctx context.Context, region string, page, size int) (*dto.FormationPage, error) {
	filter := &repository.SearchFilter{}
	filter.Eq("region", region)
	return s.paged(ctx, filter, repository.SortSpec{}, page, size)
}

func (s *formationService) SearchByEstablishmentStatus(ctx context.Context, status string, page, size int) (*dto.FormationPage, error) {
	filter := &repository.SearchFilter{}
	filter.Eq("establishmentStatus", status)
	return s.paged(ctx, filter, repository.SortSpec{}, page, size)
}

func (s *formationService) SearchByProgram(ctx context.Context, program string, page, size int) (*dto.FormationPage, error) {
	filter := &repository.SearchFilter{}
	filter.Eq("program", program)
	return s.paged(ctx, filter, repository.SortSpec{}, page, size)
}

// AdvancedSearch composes one predicate per present filter, all ANDed.
func (s *formationService) AdvancedSearch(ctx context.Context, params dto.AdvancedSearchParams) (*dto.FormationPage, error) {
	filter := BuildSearchFilter(params)
	sort := sortSpec(params.SortBy, params.Direction)
	return s.paged(ctx, filter, sort, params.Page, params.Size)
}

// BuildSearchFilter translates the optional params into the ordered predicate
// list that the repository turns into a store query.
func BuildSearchFilter(params dto.AdvancedSearchParams) *repository.SearchFilter {
	filter := &repository.SearchFilter{}

	if v := strings.TrimSpace(params.Region); v != "" {
		filter.Eq("region", v)
	}
	if v := strings.TrimSpace(params.Department); v != "" {
		filter.Eq("department", v)
	}
	if v := strings.TrimSpace(params.EstablishmentStatus); v != "" {
		filter.Eq("establishmentStatus", v)
	}
	if v := strings.TrimSpace(params.Program); v != "" {
		filter.Eq("program", v)
	}

	// bacType filters on "at least one admitted student of that track".
	// Unrecognized values add no predicate.
	switch strings.TrimSpace(params.BacType) {
	case "general":
		filter.Gt("admittedBacGeneral", 0)
	case "techno":
		filter.Gt("admittedBacTechno", 0)
	case "pro":
		filter.Gt("admittedBacPro", 0)
	}

	if params.HasDetailedInfo != nil {
		filter.Eq("hasDetailedInfo", *params.HasDetailedInfo)
	}
	if v := strings.TrimSpace(params.AlternanceAvailable); v != "" {
		filter.Eq("alternanceAvailable", v)
	}

	return filter
}

func (s *formationService) RankFormations(ctx context.Context, sortBy, direction string, page, size int) (*dto.FormationPage, error) {
	return s.paged(ctx, &repository.SearchFilter{}, sortSpec(sortBy, direction), page, size)
}

func (s *formationService) SearchFormations(ctx context.Context, query string) ([]domain.Formation, error) {
	return s.repo.SearchTopByName(ctx, query, suggestionPreviewLimit)
}

// GetFieldSuggestions returns distinct values of a field for autocomplete.
// Without a query it previews at most 5 values in store order; with a query
// it returns every value whose accent-folded form starts with the folded
// query. The field name is passed through to the store unvalidated.
func (s *formationService) GetFieldSuggestions(ctx context.Context, field, query string) ([]string, error) {
	values, err := s.repo.DistinctFieldValues(ctx, field)
	if err != nil {
		return nil, err
	}

	query = strings.TrimSpace(query)
	if query == "" {
		preview := make([]string, 0, suggestionPreviewLimit)
		for _, v := range values {
			if v == "" {
				continue
			}
			preview = append(preview, v)
			if len(preview) == suggestionPreviewLimit {
				break
			}
		}
		return preview, nil
	}

	folded := utils.FoldAccents(query)
	matches := []string{}
	for _, v := range values {
		if v == "" {
			continue
		}
		if strings.HasPrefix(utils.FoldAccents(v), folded) {
			matches = append(matches, v)
		}
	}
	return matches, nil
}

func (s *formationService) SaveFormation(ctx context.Context, formation *domain.Formation) (*domain.Formation, error) {
	return s.repo.Save(ctx, formation)
}

func (s *formationService) SaveAll(ctx context.Context, formations []domain.Formation) error {
	return s.repo.SaveAll(ctx, formations)
}

// ComputeAcceptanceRate derives the acceptance rate from the per-bac-type
// admitted counts. Nil when the candidate count is absent or zero.
func (s *formationService) ComputeAcceptanceRate(formation *domain.Formation) *float64 {
	if formation == nil || formation.CandidateCount == nil || *formation.CandidateCount == 0 {
		return nil
	}

	totalAdmitted := 0
	for _, n := range []*int{formation.AdmittedBacGeneral, formation.AdmittedBacTechno, formation.AdmittedBacPro} {
		if n != nil {
			totalAdmitted += *n
		}
	}

	rate := float64(totalAdmitted) / float64(*formation.CandidateCount)
	return &rate
}

func (s *formationService) paged(ctx context.Context, filter *repository.SearchFilter, sort repository.SortSpec, page, size int) (*dto.FormationPage, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 10
	}

	content, total, err := s.repo.FindPaged(ctx, filter, sort, page, size)
	if err != nil {
		return nil, err
	}

	totalPages := int(total) / size
	if int(total)%size != 0 {
		totalPages++
	}

	return &dto.FormationPage{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}, nil
}

func sortSpec(sortBy, direction string) repository.SortSpec {
	return repository.SortSpec{
		Field: strings.TrimSpace(sortBy),
		Desc:  strings.EqualFold(strings.TrimSpace(direction), "DESC"),
	}
}
