package routes

import (
	"github.com/gin-gonic/gin"
)

const (
	PathSacola = "/sacola"
)

func addSacolaRoutes(rg *gin.RouterGroup, h Handlers) {
	rg.GET("", h.Bag.GetBag)
	rg.GET("/resumo", h.Bag.GetSummary)

	items := rg.Group("/items")
	{
		items.POST("", h.Bag.AddItem)
		items.DELETE("", h.Bag.Clear)
		items.PUT("/:itemId", h.Bag.UpdateQuantity)
		items.DELETE("/:itemId", h.Bag.RemoveItem)
	}

	rg.POST("/coupon", h.Coupon.Apply)
	rg.DELETE("/coupon", h.Coupon.Remove)

	rg.POST("/endereco", h.Address.SetAddress)
	rg.GET("/endereco", h.Address.GetDefault)
	rg.GET("/enderecos", h.Address.List)

	rg.POST("/frete", h.Bag.QuoteShipping)

	rg.POST("/checkout", h.Checkout.Checkout)
	rg.GET("/pagamentos", h.Checkout.ListPayments)
	rg.GET("/pagamentos/:payment_id", h.Checkout.GetPayment)
}
