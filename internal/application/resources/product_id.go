package resources

import (
	"strings"

	"github.com/jhoicas/smart-distribution/internal/domain/entity"
)

// NormalizeNextProductID extrae newProductId de un objeto o de un arreglo de un elemento.
// Un id ausente no es error: el formulario pasa a modo manual.
func NormalizeNextProductID(body []byte) (entity.NextProductID, error) {
	obj, err := singleObject(body)
	if err != nil {
		return entity.NextProductID{}, err
	}
	return entity.NextProductID{
		NewProductID: strings.TrimSpace(obj.str("newProductId", "NewProductID", "new_product_id", "productId")),
	}, nil
}
