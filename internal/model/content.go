package model

type NavLink struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

type Feature struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	// Span is the number of grid columns the tile covers (1-3).
	Span int `json:"span"`
}

type PlanPrice struct {
	Monthly int64 `json:"monthly"`
	Yearly  int64 `json:"yearly"`
}

type Plan struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Price        PlanPrice `json:"price"`
	Description  string    `json:"description"`
	Features     []string  `json:"features"`
	Popular      bool      `json:"popular"`
	ContactSales bool      `json:"contact_sales"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
