package generate_slots

// Request модель запроса на генерацию слотов по существующему шаблону
type Request struct {
	TemplateID int64 // ID шаблона расписания
}

// Response модель ответа генератора
type Response struct {
	TemplateID   int64    // ID шаблона
	ManagerID    int64    // ID менеджера
	SlotsCreated int64    // Сколько слотов реально вставлено (дубликаты пропущены)
	Dates        []string // Даты приёма в горизонте, YYYY-MM-DD по возрастанию
}
