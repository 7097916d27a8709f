package dto

// CreateUniversityRequest is the payload for creating a university.
type CreateUniversityRequest struct {
	Name        string  `json:"name" binding:"required" example:"Institute of Science and Technology"`
	Description *string `json:"description"`
}

// UpdateUniversityRequest is the payload for updating a university.
type UpdateUniversityRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}
