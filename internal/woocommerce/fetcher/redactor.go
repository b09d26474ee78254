package fetcher

import (
	"net/http"
	"net/url"
	"slices"
	"strings"
)

const redacted = "xxxxx"

var (
	// sensitiveKeys 값이 마스킹될 쿼리 파라미터 이름 (소문자 비교)
	sensitiveKeys = []string{
		"consumer_key", "consumer_secret",
		"oauth_consumer_key", "oauth_signature", "oauth_token",
		"token", "access_token", "api_key", "key", "secret", "password",
	}

	sensitiveSuffixes = []string{"_token", "_secret", "_signature", "_password"}

	sensitiveHeaders = []string{"Authorization", "Proxy-Authorization", "Cookie", "Set-Cookie"}
)

// redactURL URL에 포함된 인증 정보(UserInfo, WooCommerce consumer key/secret 등)를 마스킹한 문자열을 반환합니다.
func redactURL(u *url.URL) string {
	if u == nil {
		return ""
	}

	ru := *u
	if u.User != nil {
		if _, ok := u.User.Password(); ok {
			ru.User = url.UserPassword(u.User.Username(), redacted)
		} else {
			ru.User = url.User(redacted)
		}
	}

	if u.RawQuery != "" {
		q := ru.Query()
		for k := range q {
			if isSensitiveKey(k) {
				q.Set(k, redacted)
			}
		}
		ru.RawQuery = q.Encode()
	}

	return ru.String()
}

// redactRawURL 파싱할 수 없는 URL은 원문 대신 고정 문자열을 반환합니다.
func redactRawURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "<invalid url>"
	}
	return redactURL(u)
}

func redactHeaders(h http.Header) http.Header {
	if h == nil {
		return nil
	}

	masked := h.Clone()
	for _, k := range sensitiveHeaders {
		if masked.Get(k) != "" {
			masked.Set(k, "***")
		}
	}
	return masked
}

func isSensitiveKey(key string) bool {
	k := strings.ToLower(key)
	if slices.Contains(sensitiveKeys, k) {
		return true
	}
	for _, suffix := range sensitiveSuffixes {
		if strings.HasSuffix(k, suffix) {
			return true
		}
	}
	return false
}
