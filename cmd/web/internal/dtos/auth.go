package dtos

import "github.com/xdoubleu/essentia/v2/pkg/validate"

type SignInDto struct {
	Username string `schema:"username"`
	Password string `schema:"password"`
}

type RegisterDto struct {
	Username string `schema:"username"`
	Password string `schema:"password"`
}

func (dto *SignInDto) Validate() (bool, map[string]string) {
	v := validate.New()

	validate.Check(v, "username", dto.Username, validate.IsNotEmpty)
	validate.Check(v, "password", dto.Password, validate.IsNotEmpty)

	return v.Valid(), v.Errors()
}

func (dto *RegisterDto) Validate() (bool, map[string]string) {
	v := validate.New()

	validate.Check(v, "username", dto.Username, validate.IsNotEmpty)
	validate.Check(v, "password", dto.Password, validate.IsNotEmpty)

	return v.Valid(), v.Errors()
}
