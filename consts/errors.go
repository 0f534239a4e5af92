package consts

import "errors"

var ErrNotFound = errors.New("Record not found")
var ErrAlreadyExists = errors.New("Record already exists")
var ErrAuthenticationFailed = errors.New("Authentication failed")
