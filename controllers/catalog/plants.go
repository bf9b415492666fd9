package catalogController

import (
	"net/http"
	"strconv"

	"github.com/AleSenlle/el-brote-verde/catalog"
	"github.com/AleSenlle/el-brote-verde/models"
	"github.com/AleSenlle/el-brote-verde/preload"
	"github.com/AleSenlle/el-brote-verde/search"
	"github.com/gin-gonic/gin"
)

func plantSearchFields() []func(models.Plant) string {
	return []func(models.Plant) string{
		func(p models.Plant) string { return p.CommonName },
		func(p models.Plant) string { return p.ScientificName },
		func(p models.Plant) string { return p.Family },
		func(p models.Plant) string { return p.Description },
	}
}

// GET /plants?search=&page=&per_page=
//
// The full catalog pipeline: aggregate both sources, filter on the
// search term, paginate, and kick off image preloading for the current
// and next page. search/page mirror the URL so the view is
// deep-linkable; a term from the URL takes the immediate path, not the
// debounced one.
func GetPlants(agg *catalog.Aggregator, preloader *preload.Preloader) gin.HandlerFunc {
	return func(c *gin.Context) {
		term := c.Query("search")
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(search.DefaultPageSize)))
		if !search.AllowedPageSize(perPage) {
			perPage = search.DefaultPageSize
		}

		plants := agg.Plants(c.Request.Context())

		engine := search.NewEngine(0, plantSearchFields()...)
		engine.SetItems(plants)
		engine.SetTermImmediate(term)
		filtered := engine.FilteredItems()

		paginator := search.NewPaginator(filtered, perPage)
		paginator.SetPage(page)
		pageItems := paginator.PageItems()
		start, end := paginator.Range()

		imageURL := func(p models.Plant) string { return p.ImageURL }
		preloader.Preload(preload.URLs(pageItems, imageURL))
		preloader.Preload(preload.NextPageURLs(filtered, paginator.Page(), perPage, imageURL))

		c.JSON(http.StatusOK, gin.H{
			"plants": pageItems,
			"pagination": gin.H{
				"current_page": paginator.Page(),
				"total_pages":  paginator.TotalPages(),
				"page_size":    perPage,
				"total_items":  paginator.TotalItems(),
				"start_item":   start,
				"end_item":     end,
			},
			"search":     engine.Term(),
			"has_search": engine.HasSearch(),
			"page":       paginator.Page(),
		})
	}
}

// GET /plants/:id
func GetPlant(agg *catalog.Aggregator) gin.HandlerFunc {
	return func(c *gin.Context) {
		plant, ok := agg.FindPlant(c.Request.Context(), c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Plant not found"})
			return
		}
		c.JSON(http.StatusOK, plant)
	}
}

// GET /categories
func GetCategories(store *catalog.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"categories": store.Categories()})
	}
}
