package common

const (
	CodeSuccess      = 0
	CodeUnknownError = 1
	CodeParamError   = 2
	CodeNotFound     = 3
)

/*
Resp 是所有接口统一的响应格式，Code 为 0 时 Data 有效。
*/
type Resp struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data"`
}

func MakeSuccessResp(data interface{}) Resp {
	return Resp{
		Code: CodeSuccess,
		Msg:  "success",
		Data: data,
	}
}

func MakeUnknownErrorResp() Resp {
	return Resp{
		Code: CodeUnknownError,
		Msg:  "unknown error",
	}
}

func MakeParamErrorResp(msg string) Resp {
	return Resp{
		Code: CodeParamError,
		Msg:  msg,
	}
}

func MakeNotFoundResp(msg string) Resp {
	return Resp{
		Code: CodeNotFound,
		Msg:  msg,
	}
}
