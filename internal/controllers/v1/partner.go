package v1

import (
	"fmt"
	"net/http"

	"github.com/constructa/backend/internal/httputil"
	"github.com/constructa/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterPartnerRoutes registers the routes for partners with
// the RouterGroup that is passed.
func RegisterPartnerRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsPartnerList)
		r.GET("", GetPartners)
		r.POST("", CreatePartners)
	}

	// Partner with ID
	{
		r.OPTIONS("/:id", OptionsPartnerDetail)
		r.GET("/:id", GetPartner)
		r.PATCH("/:id", UpdatePartner)
		r.DELETE("/:id", DeletePartner)
	}
}

func OptionsPartnerList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

func OptionsPartnerDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Partner{})
}

// CreatePartners creates new partners
func CreatePartners(c *gin.Context) {
	var partners []PartnerEditable

	err := httputil.BindData(c, &partners)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PartnerCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := PartnerCreateResponse{}

	for _, editable := range partners {
		partner := editable.model()

		err := models.DB.Create(&partner).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newPartner(c, partner)
		r.Data = append(r.Data, PartnerResponse{Data: &data})
	}

	c.JSON(status, r)
}

// GetPartners returns a list of partners filtered by the query parameters
func GetPartners(c *gin.Context) {
	var filter PartnerQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	var partners []models.Partner

	q := models.DB.
		Order("name ASC").
		Where(filter.model(), queryFields...)

	if filter.Name != "" {
		q = q.Where("name LIKE ?", fmt.Sprintf("%%%s%%", filter.Name))
	} else if slices.Contains(setFields, "Name") {
		q = q.Where("name = ''")
	}

	if filter.Email != "" {
		q = q.Where("email LIKE ?", fmt.Sprintf("%%%s%%", filter.Email))
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

	err := q.Find(&partners).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PartnerListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PartnerListResponse{
			Error: &e,
		})
		return
	}

	apiResources := make([]Partner, 0)
	for _, partner := range partners {
		apiResources = append(apiResources, newPartner(c, partner))
	}

	c.JSON(http.StatusOK, PartnerListResponse{
		Data: apiResources,
		Pagination: &Pagination{
			Count:  len(apiResources),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// GetPartner returns a specific partner
func GetPartner(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PartnerResponse{
			Error: &s,
		})
		return
	}

	var partner models.Partner
	err = models.DB.First(&partner, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PartnerResponse{
			Error: &s,
		})
		return
	}

	apiResource := newPartner(c, partner)
	c.JSON(http.StatusOK, PartnerResponse{Data: &apiResource})
}

// UpdatePartner updates an existing partner. Only values to be updated
// need to be specified.
func UpdatePartner(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PartnerResponse{
			Error: &s,
		})
		return
	}

	var partner models.Partner
	err = models.DB.First(&partner, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PartnerResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, PartnerEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PartnerResponse{
			Error: &s,
		})
		return
	}

	var data PartnerEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PartnerResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&partner).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PartnerResponse{
			Error: &s,
		})
		return
	}

	apiResource := newPartner(c, partner)
	c.JSON(http.StatusOK, PartnerResponse{Data: &apiResource})
}

// DeletePartner deletes a partner.
//
// Historical transactions that reference the partner are kept, the
// engine tolerates the dangling reference.
func DeletePartner(c *gin.Context) {
	deleteResource[models.Partner](c)
}
