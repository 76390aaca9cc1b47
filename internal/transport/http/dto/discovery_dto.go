package dto

import "github.com/provhatrahman/Ahwaaz/internal/services/discovery"

type GroupsResponse struct {
	Mode   string            `json:"mode"`
	Groups []discovery.Group `json:"groups"`
	Count  int               `json:"count"`
}

type OptionsResponse struct {
	All       discovery.FilterOptions `json:"all"`
	Available discovery.FilterOptions `json:"available"`
}
