// Package woocommerce WooCommerce REST API(v3) 클라이언트를 제공합니다.
package woocommerce

import (
	"context"
	"encoding/json"
	"io"
	"mime"
	"net/url"
	"strconv"
	"strings"

	"github.com/darkkaiser/shop-catalog/internal/woocommerce/fetcher"
	applog "github.com/darkkaiser/shop-catalog/pkg/log"
	"golang.org/x/net/html/charset"
)

const (
	component = "woocommerce.client"

	apiPrefix = "/wp-json/wc/v3"
)

// Config 클라이언트 접속 정보입니다.
type Config struct {
	BaseURL        string // 쇼핑몰 주소 (예: https://shop.example.com)
	ConsumerKey    string
	ConsumerSecret string
}

// Client 카탈로그 조회용 REST 클라이언트입니다.
// 모든 요청은 주입된 Fetcher 체인(재시도, 상태 코드 검사, 로깅)을 거칩니다.
type Client struct {
	baseURL *url.URL

	consumerKey    string
	consumerSecret string

	fetcher fetcher.Fetcher
}

// NewClient BaseURL은 http 또는 https 절대 주소여야 합니다.
// 경로에 /wp-json/wc/v3 가 이미 포함되어 있으면 그대로 사용합니다.
func NewClient(cfg Config, f fetcher.Fetcher) (*Client, error) {
	if f == nil {
		return nil, newErrInvalidConfig("Fetcher가 지정되지 않았습니다")
	}

	u, err := url.Parse(strings.TrimSpace(cfg.BaseURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, newErrInvalidConfig("WooCommerce 주소(base_url)가 올바르지 않습니다: " + cfg.BaseURL)
	}
	u.Path = strings.TrimSuffix(strings.TrimRight(u.Path, "/"), apiPrefix)
	u.RawQuery = ""
	u.Fragment = ""

	if u.Scheme == "http" && cfg.ConsumerKey != "" {
		applog.WithComponent(component).
			WithField("base_url", u.Host).
			Warn("HTTP 평문 연결에 인증 정보를 쿼리 파라미터로 전송합니다")
	}

	return &Client{
		baseURL:        u,
		consumerKey:    cfg.ConsumerKey,
		consumerSecret: cfg.ConsumerSecret,
		fetcher:        f,
	}, nil
}

// FetchProductDetail GET /products/{id}
// 레코드가 없거나 비어 있으면 NotFound 에러를 반환합니다. Context가 취소되면 Context 에러를 그대로 반환합니다.
func (c *Client) FetchProductDetail(ctx context.Context, id int64) (*Product, error) {
	var p *Product
	if err := c.getJSON(ctx, "/products/"+strconv.FormatInt(id, 10), nil, &p); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, newErrFetchProduct(err, id)
	}
	if p == nil || p.ID == 0 {
		return nil, newErrProductNotFound(id)
	}

	return p, nil
}

// FetchProducts GET /products
func (c *Client) FetchProducts(ctx context.Context, q ProductQuery) ([]Product, error) {
	var products []Product
	if err := c.getJSON(ctx, "/products", q.Values(), &products); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, newErrFetchProducts(err)
	}

	return products, nil
}

// FetchReviews GET /products/reviews?product={productID}
func (c *Client) FetchReviews(ctx context.Context, productID int64, perPage int) ([]Review, error) {
	q := url.Values{}
	q.Set("product", strconv.FormatInt(productID, 10))
	if perPage > 0 {
		q.Set("per_page", strconv.Itoa(perPage))
	}

	var reviews []Review
	if err := c.getJSON(ctx, "/products/reviews", q, &reviews); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, newErrFetchReviews(err, productID)
	}

	return reviews, nil
}

func (c *Client) endpoint(path string, q url.Values) string {
	u := *c.baseURL
	u.Path = u.Path + apiPrefix + path

	if q == nil {
		q = url.Values{}
	}
	if c.consumerKey != "" {
		q.Set("consumer_key", c.consumerKey)
		q.Set("consumer_secret", c.consumerSecret)
	}
	u.RawQuery = q.Encode()

	return u.String()
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, v any) error {
	resp, err := fetcher.Get(ctx, c.fetcher, c.endpoint(path, q))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := utf8Body(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return newErrDecode(err, path)
	}

	if err := json.NewDecoder(body).Decode(v); err != nil {
		return newErrDecode(err, path)
	}

	return nil
}

// utf8Body Content-Type에 UTF-8이 아닌 charset이 명시된 경우에만 변환 Reader를 씌웁니다.
func utf8Body(body io.Reader, contentType string) (io.Reader, error) {
	if contentType == "" {
		return body, nil
	}

	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return body, nil
	}

	cs := strings.TrimSpace(params["charset"])
	if cs == "" || strings.EqualFold(cs, "utf-8") || strings.EqualFold(cs, "utf8") {
		return body, nil
	}

	return charset.NewReaderLabel(cs, body)
}
