package common

import "errors"

var (
	ErrRequestParamEmpty               = errors.New("request param is empty")
	ErrRequestParamInvalid             = errors.New("request param is invalid")
	ErrContentTypeNotMultipartFormData = errors.New("content-type is not multipart/form-data")
	ErrServiceNotConfigured            = errors.New("service is not configured")
)
