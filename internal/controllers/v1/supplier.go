package v1

import (
	"fmt"
	"net/http"

	"github.com/constructa/backend/internal/httputil"
	"github.com/constructa/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterSupplierRoutes registers the routes for suppliers with
// the RouterGroup that is passed.
func RegisterSupplierRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsSupplierList)
		r.GET("", GetSuppliers)
		r.POST("", CreateSuppliers)
	}

	// Supplier with ID
	{
		r.OPTIONS("/:id", OptionsSupplierDetail)
		r.GET("/:id", GetSupplier)
		r.PATCH("/:id", UpdateSupplier)
		r.DELETE("/:id", DeleteSupplier)
	}
}

func OptionsSupplierList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

func OptionsSupplierDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Supplier{})
}

// CreateSuppliers creates new suppliers
func CreateSuppliers(c *gin.Context) {
	var suppliers []SupplierEditable

	err := httputil.BindData(c, &suppliers)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SupplierCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := SupplierCreateResponse{}

	for _, editable := range suppliers {
		supplier := editable.model()

		err := models.DB.Create(&supplier).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newSupplier(c, supplier)
		r.Data = append(r.Data, SupplierResponse{Data: &data})
	}

	c.JSON(status, r)
}

// GetSuppliers returns a list of suppliers filtered by the query parameters
func GetSuppliers(c *gin.Context) {
	var filter SupplierQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	var suppliers []models.Supplier

	q := models.DB.
		Order("name ASC").
		Where(filter.model(), queryFields...)

	if filter.Name != "" {
		q = q.Where("name LIKE ?", fmt.Sprintf("%%%s%%", filter.Name))
	} else if slices.Contains(setFields, "Name") {
		q = q.Where("name = ''")
	}

	if filter.Search != "" {
		q = q.Where("name LIKE ?", fmt.Sprintf("%%%s%%", filter.Search))
	}

	q = q.Offset(int(filter.Offset))

	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	err := q.Find(&suppliers).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SupplierListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SupplierListResponse{
			Error: &e,
		})
		return
	}

	apiResources := make([]Supplier, 0)
	for _, supplier := range suppliers {
		apiResources = append(apiResources, newSupplier(c, supplier))
	}

	c.JSON(http.StatusOK, SupplierListResponse{
		Data: apiResources,
		Pagination: &Pagination{
			Count:  len(apiResources),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// GetSupplier returns a specific supplier
func GetSupplier(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SupplierResponse{
			Error: &s,
		})
		return
	}

	var supplier models.Supplier
	err = models.DB.First(&supplier, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SupplierResponse{
			Error: &s,
		})
		return
	}

	apiResource := newSupplier(c, supplier)
	c.JSON(http.StatusOK, SupplierResponse{Data: &apiResource})
}

// UpdateSupplier updates an existing supplier. Only values to be updated
// need to be specified.
func UpdateSupplier(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SupplierResponse{
			Error: &s,
		})
		return
	}

	var supplier models.Supplier
	err = models.DB.First(&supplier, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SupplierResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, SupplierEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SupplierResponse{
			Error: &s,
		})
		return
	}

	var data SupplierEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SupplierResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&supplier).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SupplierResponse{
			Error: &s,
		})
		return
	}

	apiResource := newSupplier(c, supplier)
	c.JSON(http.StatusOK, SupplierResponse{Data: &apiResource})
}

// DeleteSupplier deletes a supplier
func DeleteSupplier(c *gin.Context) {
	deleteResource[models.Supplier](c)
}
