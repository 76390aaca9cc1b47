package dto

type UpdateProfileRequest struct {
	FullName string `json:"full_name"`
}

type ThemeRequest struct {
	Theme string `json:"theme"`
}

type TourRequest struct {
	Completed bool `json:"completed"`
}

type TourResponse struct {
	Tour      string `json:"tour"`
	Completed bool   `json:"completed"`
}

type PreferencesRequest struct {
	Theme string          `json:"theme"`
	Tours map[string]bool `json:"tours"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}
