package transport

import "net/http"

type plainStrategy struct{}

func (p *plainStrategy) Scheme() string {
	return SchemeHTTP
}

func (p *plainStrategy) Agent() (*http.Transport, error) {
	return nil, nil
}

func NewPlainStrategy() Strategy {
	return &plainStrategy{}
}
