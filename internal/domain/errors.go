package domain

import "errors"

var (
	ErrEmployeeNotFound    = errors.New("çalışan bulunamadı")
	ErrInvalidEmployeeType = errors.New("geçersiz çalışan türü")
)
