package dbmodels

type Vacancy struct {
	BaseSpaceModel
	VacancyName string `gorm:"type:varchar(255)" comment:"Вакансия"`
	JobTitle    string `gorm:"type:varchar(255)" comment:"Должность"`
	AuthorID    string `gorm:"type:varchar(36)"`
	IsActive    bool
}
