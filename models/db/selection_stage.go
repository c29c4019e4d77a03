package dbmodels

type SelectionStage struct {
	BaseSpaceModel
	VacancyID  string `gorm:"type:varchar(36);index"`
	StageOrder int
	Name       string `gorm:"type:varchar(255)"`
	Color      string `gorm:"type:varchar(50)"` // цвет колонки на доске, только для отображения
	CanDelete  bool
}

const (
	NegotiationStage      string = "Откликнулся"
	ScreenStage           string = "Скриннинг"
	ManagerInterviewStage string = "Интервью с менеджером"
	TestStage             string = "Тестирование"
	OfferStage            string = "Оффер"
	HiredStage            string = "Принят"
)

var DefaultSelectionStages = []string{NegotiationStage, ScreenStage, ManagerInterviewStage, TestStage, OfferStage, HiredStage}
