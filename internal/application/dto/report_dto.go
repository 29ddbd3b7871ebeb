package dto

// VisitsByRoom conteo de visitas de una sala en un período.
type VisitsByRoom struct {
	RoomID   string `json:"room_id"`
	RoomName string `json:"room_name"`
	Count    int    `json:"count"`
}

// VisitReportResponse reporte de visitas por sala: hoy, últimos 7 días
// y últimos 30 días.
type VisitReportResponse struct {
	Daily   []VisitsByRoom `json:"daily"`
	Weekly  []VisitsByRoom `json:"weekly"`
	Monthly []VisitsByRoom `json:"monthly"`
}
