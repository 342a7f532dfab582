package request

import (
	"net/http"

	"github.com/go-resty/resty/v2"
)

// Request is the shared client. Retries are off: a failed poll falls back and the next tick tries again.
var Request = New()

func New() *resty.Client {
	return resty.New().SetTransport(&http.Transport{
		Proxy: http.ProxyFromEnvironment, // 通用适配环境变量
	}).SetRetryCount(0).
		SetHeader("Accept", "application/json")
}
