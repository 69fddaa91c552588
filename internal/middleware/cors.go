package middleware

import "net/http"

// AllowAllOrigins は任意のオリジンを許可する設定値。
const AllowAllOrigins = "*"

// NewCORSMiddleware はCORSミドルウェアを返す。
// allowedOriginが"*"の場合は任意のオリジン・メソッド・ヘッダーを許可する。
// credentials付きリクエストでも動くよう、Originヘッダーがあればその値をそのまま返す。
// OPTIONSプリフライトリクエストには204で応答する。
func NewCORSMiddleware(allowedOrigin string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()

			origin := r.Header.Get("Origin")
			switch {
			case allowedOrigin != AllowAllOrigins:
				h.Set("Access-Control-Allow-Origin", allowedOrigin)
			case origin != "":
				h.Set("Access-Control-Allow-Origin", origin)
				h.Add("Vary", "Origin")
			default:
				h.Set("Access-Control-Allow-Origin", AllowAllOrigins)
			}
			h.Set("Access-Control-Allow-Credentials", "true")

			if r.Method == http.MethodOptions {
				methods := r.Header.Get("Access-Control-Request-Method")
				if methods == "" {
					methods = "GET, POST, PUT, PATCH, DELETE, OPTIONS"
				}
				headers := r.Header.Get("Access-Control-Request-Headers")
				if headers == "" {
					headers = "Content-Type"
				}
				h.Set("Access-Control-Allow-Methods", methods)
				h.Set("Access-Control-Allow-Headers", headers)
				h.Set("Access-Control-Max-Age", "600")
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
