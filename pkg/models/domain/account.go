package domain

type AdAccount struct {
	Name string
}
