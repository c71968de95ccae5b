package entity

type City struct {
	BaseNoDelete
	Name string `db:"name"`
}

type Facility struct {
	BaseNoDelete
	Name string `db:"name"`
}
