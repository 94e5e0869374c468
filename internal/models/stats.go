package models

// StatsOverview holds the dashboard counters. The three counts are computed
// independently, without cross-consistency guarantees.
type StatsOverview struct {
	ModelsCount   int `json:"modelsCount"`
	QuizzesCount  int `json:"quizzesCount"`
	StudentsCount int `json:"studentsCount"`
}
