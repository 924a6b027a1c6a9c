package handler

import "github.com/itisal/itisal-backend/internal/product"

type CategoriesResponse struct {
	Categories []product.Category `json:"categories"`
}

type ProductResponse struct {
	Product product.Product `json:"product"`
}

func NewProductResponse(p product.Product, staticURL string) ProductResponse {
	p.Image = imageURL(p.Image, staticURL)
	return ProductResponse{Product: p}
}

type ProductsResponse struct {
	Products []product.Product `json:"products"`
}

func NewProductsResponse(elements []product.Product, staticURL string) ProductsResponse {
	for i := range elements {
		elements[i].Image = imageURL(elements[i].Image, staticURL)
	}
	return ProductsResponse{Products: elements}
}

func imageURL(objectName *string, staticURL string) *string {
	if objectName == nil || *objectName == "" {
		return objectName
	}
	url := staticURL + "/" + *objectName
	return &url
}
