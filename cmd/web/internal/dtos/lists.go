package dtos

import "github.com/xdoubleu/essentia/v2/pkg/validate"

type CreateListDto struct {
	Name    string `schema:"name"`
	DueDate string `schema:"dueDate"`
}

type AddItemDto struct {
	Name     string `schema:"name"`
	Quantity int    `schema:"quantity"`
	Unit     string `schema:"unit"`
}

func (dto *CreateListDto) Validate() (bool, map[string]string) {
	v := validate.New()

	validate.Check(v, "name", dto.Name, validate.IsNotEmpty)
	validate.Check(v, "dueDate", dto.DueDate, validate.IsNotEmpty)

	return v.Valid(), v.Errors()
}

func (dto *AddItemDto) Validate() (bool, map[string]string) {
	v := validate.New()

	validate.Check(v, "name", dto.Name, validate.IsNotEmpty)
	validate.Check(v, "unit", dto.Unit, validate.IsNotEmpty)

	return v.Valid(), v.Errors()
}
