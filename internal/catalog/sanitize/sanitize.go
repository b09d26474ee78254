// Package sanitize 카탈로그 API가 내려주는 HTML 조각을 화면 표시용 평문으로 정리합니다.
package sanitize

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	applog "github.com/darkkaiser/shop-catalog/pkg/log"
)

const component = "catalog.sanitize"

var (
	hexRefRegexp = regexp.MustCompile(`&#[xX]([0-9a-fA-F]+);`)
	decRefRegexp = regexp.MustCompile(`&#([0-9]+);`)

	breakTagRegexp     = regexp.MustCompile(`(?i)<br\s*/?>`)
	paragraphTagRegexp = regexp.MustCompile(`(?i)</?p>`)
	anyTagRegexp       = regexp.MustCompile(`<[^>]+>`)

	// namedEntities 순서대로 하나씩 치환합니다. (&amp;lt; 는 < 가 됩니다)
	namedEntities = []struct{ from, to string }{
		{"&amp;", "&"},
		{"&lt;", "<"},
		{"&gt;", ">"},
		{"&quot;", `"`},
		{"&apos;", "'"},
		{"&nbsp;", " "},
		{"&ndash;", "–"},
	}
)

// Sanitize 문자 참조와 엔티티를 디코딩한 뒤 태그를 제거하고 앞뒤 공백을 정리합니다.
//
// 처리 순서:
//  1. 16진수 문자 참조(&#x20B9;), 10진수 문자 참조(&#8377;)
//  2. &amp; &lt; &gt; &quot; &apos; &nbsp; &ndash;
//  3. <br>, <p>, </p> 를 공백으로 치환 후 trim
//  4. 남은 <...> 태그 제거, &nbsp; 를 공백으로 치환 후 trim
//
// 유효하지 않은 문자 참조(0, 서로게이트, 범위 초과)는 원문 그대로 둡니다.
// 처리 중 패닉이 발생하면 입력을 그대로 반환합니다.
func Sanitize(raw string) (out string) {
	if raw == "" {
		return ""
	}

	defer func() {
		if r := recover(); r != nil {
			applog.WithComponent(component).
				WithField("panic", r).
				Error("HTML 정리 중 패닉이 발생하여 원문을 그대로 사용합니다")
			out = raw
		}
	}()

	return stripTags(decodeEntities(raw))
}

// SanitizeOr 정리한 결과가 비어 있으면 fallback을 반환합니다.
func SanitizeOr(raw, fallback string) string {
	if s := Sanitize(raw); s != "" {
		return s
	}
	return fallback
}

func decodeEntities(s string) string {
	s = hexRefRegexp.ReplaceAllStringFunc(s, func(m string) string {
		return decodeCharRef(m, hexRefRegexp.FindStringSubmatch(m)[1], 16)
	})
	s = decRefRegexp.ReplaceAllStringFunc(s, func(m string) string {
		return decodeCharRef(m, decRefRegexp.FindStringSubmatch(m)[1], 10)
	})

	for _, e := range namedEntities {
		s = strings.ReplaceAll(s, e.from, e.to)
	}

	s = breakTagRegexp.ReplaceAllString(s, " ")
	s = paragraphTagRegexp.ReplaceAllString(s, " ")

	return strings.TrimSpace(s)
}

func stripTags(s string) string {
	s = anyTagRegexp.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "&nbsp;", " ")

	return strings.TrimSpace(s)
}

func decodeCharRef(ref, digits string, base int) string {
	n, err := strconv.ParseUint(digits, base, 32)
	if err != nil || n == 0 {
		return ref
	}

	r := rune(n)
	if !utf8.ValidRune(r) {
		return ref
	}

	return string(r)
}
