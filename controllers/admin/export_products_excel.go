package adminController

import (
	"net/http"

	"github.com/AleSenlle/el-brote-verde/catalog"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// GET /admin/products/export-excel
func ExportProductsToExcel(store *catalog.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		products := store.Products()

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "Name", "ScientificName", "Family", "Description",
			"Price", "Image", "InStock", "Rating", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.ScientificName)
			row.AddCell().SetValue(p.Family)
			row.AddCell().SetValue(p.Description)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.Image)
			row.AddCell().SetValue(p.InStock)
			row.AddCell().SetValue(p.Rating)
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
