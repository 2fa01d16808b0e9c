package structures

// BaiduTokenResponse는 바이두 OAuth 토큰 엔드포인트의 응답입니다.
// 자격 증명이 잘못되면 200과 함께 error/error_description만 내려옵니다.
type BaiduTokenResponse struct {
	AccessToken      string `json:"access_token"`
	ExpiresIn        int64  `json:"expires_in"`
	Scope            string `json:"scope"`
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}
