package dto

// ListQuery holds the common search/sort/pagination query parameters shared
// by every listing endpoint. `order_by` accepts any declared field name; an
// unrecognized name falls back to the entity's primary identifier.
type ListQuery struct {
	Q       string `form:"q"`
	OrderBy string `form:"order_by"`
	Desc    bool   `form:"desc"`
	Limit   int    `form:"limit,default=50"  validate:"min=1,max=200"`
	Offset  int    `form:"offset,default=0"  validate:"min=0"`
}
