package httpx

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ClampInt — ограничение значения v в диапазоне [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ParseQuantity — читает qty из query с дефолтом и границами [0, maxQty].
// Ноль — осмысленное значение (удаление позиции), поэтому нижняя граница 0.
// Нечисловое значение даёт дефолт.
func ParseQuantity(c *gin.Context, defaultQty, maxQty int) int {
	v, err := strconv.Atoi(c.DefaultQuery("qty", strconv.Itoa(defaultQty)))
	if err != nil {
		return ClampInt(defaultQty, 0, maxQty)
	}
	return ClampInt(v, 0, maxQty)
}

// ParseVariant — дискриминатор варианта (размер/цвет) из query; пустая строка = без варианта.
func ParseVariant(c *gin.Context) string { return c.Query("variant") }
