package dto

import (
	"github.com/google/uuid"

	academicsModel "alumniku_backend/internals/features/academics/model"
)

type SchoolResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Color string    `json:"color,omitempty"`
}

type CourseResponse struct {
	ID         uuid.UUID `json:"id"`
	SchoolID   uuid.UUID `json:"school_id"`
	SchoolName string    `json:"school_name"`
	Name       string    `json:"name"`
	DegreeType string    `json:"degree_type"`
}

func FromSchoolModels(rows []academicsModel.SchoolModel) []SchoolResponse {
	out := make([]SchoolResponse, 0, len(rows))
	for _, s := range rows {
		out = append(out, SchoolResponse{ID: s.ID, Name: s.Name, Color: s.Color})
	}
	return out
}

func FromCourseModels(rows []academicsModel.CourseModel) []CourseResponse {
	out := make([]CourseResponse, 0, len(rows))
	for _, c := range rows {
		out = append(out, CourseResponse{
			ID:         c.ID,
			SchoolID:   c.SchoolID,
			SchoolName: c.School.Name,
			Name:       c.Name,
			DegreeType: c.DegreeType,
		})
	}
	return out
}
