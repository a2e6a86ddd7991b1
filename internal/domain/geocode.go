package domain

import "strings"

// ReversePlace - результат обратного геокодирования точки
type ReversePlace struct {
	Name    string         `json:"name"`
	Address ReverseAddress `json:"address"`
}

// ReverseAddress - структурированные компоненты адреса из геокодера
type ReverseAddress struct {
	HouseNumber  string `json:"house_number"`
	Road         string `json:"road"`
	Neighbourhood string `json:"neighbourhood"`
	Suburb       string `json:"suburb"`
	City         string `json:"city"`
	Town         string `json:"town"`
	Building     string `json:"building"`
	Amenity      string `json:"amenity"`
	Shop         string `json:"shop"`
	Leisure      string `json:"leisure"`
}

// BuildingName выбирает название здания по приоритету:
// имя места, затем теги building/amenity/shop/leisure
func (p *ReversePlace) BuildingName() string {
	for _, candidate := range []string{
		p.Name,
		p.Address.Building,
		p.Address.Amenity,
		p.Address.Shop,
		p.Address.Leisure,
	} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}

// StreetAddress собирает адрес из доступных компонентов через ", ".
// Возвращает пустую строку, если ни одного компонента нет.
func (p *ReversePlace) StreetAddress() string {
	area := p.Address.Neighbourhood
	if area == "" {
		area = p.Address.Suburb
	}
	city := p.Address.City
	if city == "" {
		city = p.Address.Town
	}

	parts := make([]string, 0, 4)
	for _, part := range []string{p.Address.HouseNumber, p.Address.Road, area, city} {
		if part != "" {
			parts = append(parts, part)
		}
	}

	return strings.Join(parts, ", ")
}
