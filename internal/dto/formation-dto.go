package dto

import "github.com/projetprice/formation-svc/internal/domain"

// AdvancedSearchParams carries the independently-optional filters of
// /api/formations/advancedSearch. Blank strings and a nil HasDetailedInfo
// mean "no filter on this field".
type AdvancedSearchParams struct {
	Region              string `query:"region"`
	Department          string `query:"department"`
	EstablishmentStatus string `query:"establishmentStatus"`
	Program             string `query:"program"`
	BacType             string `query:"bacType"`
	HasDetailedInfo     *bool  `query:"hasDetailedInfo"`
	AlternanceAvailable string `query:"alternanceAvailable"`
	Page                int    `query:"page"`
	Size                int    `query:"size"`
	SortBy              string `query:"sortBy"`
	Direction           string `query:"direction"`
}

// FormationPage mirrors the paged envelope pagination UIs expect: the page
// window plus the total count over the whole filter.
type FormationPage struct {
	Content       []domain.Formation `json:"content"`
	Page          int                `json:"page"`
	Size          int                `json:"size"`
	TotalElements int64              `json:"totalElements"`
	TotalPages    int                `json:"totalPages"`
}
