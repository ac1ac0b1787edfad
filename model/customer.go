package model

type Customer struct {
	ID   string `db:"cid" json:"cid"`
	Name string `db:"name" json:"name"`
}
