package middlewares

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/invoice-dashboard/internal/cache"
)

// CacheObserver считает попадания в кеш. Может быть nil.
type CacheObserver interface {
	ObserveCache(hit bool)
}

type bodyRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b) //nolint:wrapcheck
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s) //nolint:wrapcheck
}

// Cache отдает GET ответы из pc. Сохраняются только успешные ответы без ошибок в контексте и только если путь
// не инвалидировался, пока ответ рассчитывался.
func Cache(pc *cache.PathCache, observer CacheObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := cache.Key(c.Request.URL.Path, c.Request.URL.RawQuery)
		if entry, ok := pc.Get(key); ok {
			if observer != nil {
				observer.ObserveCache(true)
			}
			c.Data(entry.Status, entry.ContentType, entry.Body)
			c.Abort()
			return
		}
		if observer != nil {
			observer.ObserveCache(false)
		}

		generation := pc.Generation(c.Request.URL.Path)
		recorder := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = recorder
		c.Next()

		if recorder.Status() != http.StatusOK || len(c.Errors) > 0 {
			return
		}
		pc.SetIfFresh(key, generation, cache.Entry{
			Status:      recorder.Status(),
			ContentType: recorder.Header().Get("Content-Type"),
			Body:        bytes.Clone(recorder.body.Bytes()),
		})
	}
}
