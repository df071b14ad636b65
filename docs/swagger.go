// Package docs Campus Navigator API.
//
// Пешеходная навигация по кампусу университета.
// Сервис строит граф дорог из GeoJSON, PostGIS или OpenStreetMap и отвечает
// кратчайшими маршрутами между узлами карты.
//
// Основные возможности:
// - Кратчайший пешеходный маршрут с расстоянием и временем в пути
// - Поиск ближайшего узла и узлов в радиусе
// - Навигационные сессии с пересчётом маршрута по GPS
// - Ссылки для передачи маршрута с киоска на телефон
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
