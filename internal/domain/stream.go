package domain

import "github.com/google/uuid"

// Имена стримов
const (
	StreamAddressCacheFill = "stream:toilet:address-cachefill"
)

// AddressCacheFillEvent - отложенная запись адресных данных, найденных
// через reverse geocoding. Обрабатывается воркером best-effort: порядок
// конкурентных записей для одного туалета не гарантируется, но записи
// идут через COALESCE и затирают только NULL-колонки.
type AddressCacheFillEvent struct {
	EventID      uuid.UUID `json:"event_id"`
	ToiletID     int64     `json:"toilet_id"`
	BuildingName *string   `json:"building_name,omitempty"`
	Address      *string   `json:"address,omitempty"`
}

// HasPayload проверяет, что событие несёт хотя бы одно поле для записи
func (e *AddressCacheFillEvent) HasPayload() bool {
	return e.BuildingName != nil || e.Address != nil
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
