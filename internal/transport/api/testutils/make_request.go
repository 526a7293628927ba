package testutils

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
)

type RequestOptions struct {
	headers map[string]string
	form    url.Values
	cookies []*http.Cookie
}

type RequestArgs struct {
	Router http.Handler
	Method string
	URL    string
	Body   io.Reader
}

// MakeRequest выполняет запрос к роутеру через httptest. Если передана форма (WithForm), она заменяет Body.
func MakeRequest(args RequestArgs, opts ...func(*RequestOptions)) *http.Response {
	options := RequestOptions{
		headers: make(map[string]string),
		form:    nil,
		cookies: nil,
	}
	for _, opt := range opts {
		opt(&options)
	}

	var body io.Reader
	if args.Body != nil {
		body = args.Body
	}
	if options.form != nil {
		body = strings.NewReader(options.form.Encode())
	}

	request := httptest.NewRequest(args.Method, args.URL, body)
	if options.form != nil {
		request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for k, v := range options.headers {
		request.Header.Set(k, v)
	}
	for _, cookie := range options.cookies {
		request.AddCookie(cookie)
	}

	recorder := httptest.NewRecorder()

	args.Router.ServeHTTP(recorder, request)

	return recorder.Result()
}

func WithHeader(name, value string) func(*RequestOptions) {
	return func(fn *RequestOptions) {
		fn.headers[name] = value
	}
}

// WithBearer авторизует запрос jwt токеном в заголовке.
func WithBearer(token string) func(*RequestOptions) {
	return WithHeader("Authorization", "Bearer "+token)
}

func WithForm(form url.Values) func(*RequestOptions) {
	return func(fn *RequestOptions) {
		fn.form = form
	}
}

func WithCookies(c []*http.Cookie) func(*RequestOptions) {
	return func(fn *RequestOptions) {
		fn.cookies = c
	}
}
