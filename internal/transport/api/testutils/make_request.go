package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
)

type RequestOptions struct {
	headers map[string]string
	body    io.Reader
}

type RequestArgs struct {
	Router http.Handler
	Method string
	URL    string
	Body   io.Reader
}

// Response код и прочитанное тело ответа.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// MakeRequest выполняет запрос к роутеру и вычитывает тело ответа.
func MakeRequest(args RequestArgs, opts ...func(*RequestOptions)) (*Response, error) {
	options := RequestOptions{
		headers: make(map[string]string),
		body:    args.Body,
	}
	for _, opt := range opts {
		opt(&options)
	}

	request := httptest.NewRequest(args.Method, args.URL, options.body)
	for k, v := range options.headers {
		request.Header.Set(k, v)
	}

	recorder := httptest.NewRecorder()
	args.Router.ServeHTTP(recorder, request)

	res := recorder.Result()
	defer func() {
		_ = res.Body.Close()
	}()

	body, readErr := io.ReadAll(res.Body)
	if readErr != nil {
		return nil, fmt.Errorf("read response body: %s", readErr.Error())
	}

	return &Response{
		StatusCode: res.StatusCode,
		Header:     res.Header,
		Body:       body,
	}, nil
}

func WithHeader(name, value string) func(*RequestOptions) {
	return func(fn *RequestOptions) {
		fn.headers[name] = value
	}
}

// WithJSON кодирует payload в тело запроса и выставляет Content-Type. Строка или []byte передаются как есть,
// чтобы можно было отправить невалидный JSON.
func WithJSON(payload any) func(*RequestOptions) {
	return func(fn *RequestOptions) {
		switch p := payload.(type) {
		case string:
			fn.body = bytes.NewBufferString(p)
		case []byte:
			fn.body = bytes.NewReader(p)
		default:
			raw, err := json.Marshal(p)
			if err != nil {
				panic(err)
			}
			fn.body = bytes.NewReader(raw)
		}
		fn.headers["Content-Type"] = "application/json"
	}
}

// ErrorText достает сообщение из JSON ответа об ошибке. Пустая строка, если тело не в этом формате.
func ErrorText(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Error
}
