package dataservice

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"golang.org/x/sync/singleflight"

	"github.com/vnkhanh/insights-dashboard/models"
)

// SubmitGuard gộp các lần submit giống hệt nhau đang bay (double click) thành một
// lời gọi upstream. Job khác nội dung luôn được gửi riêng.
// Không khử trùng sau khi request đầu đã trả về.
type SubmitGuard struct {
	group singleflight.Group
}

// Do runs fn once per in-flight key. An empty key is never shared.
func (g *SubmitGuard) Do(key string, fn func() (any, error)) (v any, err error, shared bool) {
	if key == "" {
		v, err = fn()
		return v, err, false
	}
	return g.group.Do(key, fn)
}

// SubmitKey định danh một lần submit theo người dùng và toàn bộ nội dung request.
func SubmitKey(weblogin string, req models.JobRequest) string {
	b, err := json.Marshal(req)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(b)
	return weblogin + ":" + hex.EncodeToString(sum[:])
}
