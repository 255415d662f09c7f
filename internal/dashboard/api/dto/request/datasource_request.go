package request

type DatasourceUpdateRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}
