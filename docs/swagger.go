// Package docs Dokopoo Toilet Service API.
//
// Сервис поиска ближайших общественных туалетов. Ищет открытые туалеты
// вокруг точки, расширяя радиус до 2 км, и ранжирует их смесью близости
// и качества.
//
// Основные возможности:
// - Поиск ближайших туалетов с автоматическим расширением радиуса
// - Ранжирование по расстоянию и оценке качества (метаданные + отзывы)
// - Обогащение результатов адресами через reverse geocoding
// - Отзывы: один девайс - один отзыв на туалет
// - Статистика по загруженным данным
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
