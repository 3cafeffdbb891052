package actions

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gobuffalo/buffalo"

	"github.com/silverleaf-labs/persons-api/api"
	"github.com/silverleaf-labs/persons-api/domain"
	"github.com/silverleaf-labs/persons-api/models"
	"github.com/silverleaf-labs/persons-api/storage"
)

// uploadFieldName is the multipart field name for the country workbook upload
const uploadFieldName = "excelFile"

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// countriesList responds to GET /countries with all countries
func countriesList(c buffalo.Context) error {
	countries, err := models.CountriesAll(models.Tx(c))
	if err != nil {
		return reportError(c, err)
	}
	return renderOk(c, countries)
}

// countriesUploadForm responds to GET /countries/uploadfromexcel with the
// shape the upload submission expects
func countriesUploadForm(c buffalo.Context) error {
	return renderOk(c, map[string]string{
		"field":   uploadFieldName,
		"accepts": ".xlsx",
	})
}

// countriesUploadFromExcel responds to POST /countries/uploadfromexcel. It
// accepts an xlsx workbook, archives a copy, and inserts every new country
// name found on the Countries sheet.
func countriesUploadFromExcel(c buffalo.Context) error {
	f, err := c.File(uploadFieldName)
	if err != nil {
		err := fmt.Errorf("error getting uploaded file from context ... %v", err)
		appErr := api.NewAppError(err, api.ErrorReceivingFile, api.CategoryUser)
		appErr.Message = "Please supply an xlsx file"
		return reportError(c, appErr)
	}

	if f.Size == 0 {
		err := fmt.Errorf("uploaded file %s is empty", f.Filename)
		appErr := api.NewAppError(err, api.ErrorReceivingFile, api.CategoryUser)
		appErr.Message = "Please supply an xlsx file"
		return reportError(c, appErr)
	}

	if !strings.EqualFold(filepath.Ext(f.Filename), ".xlsx") {
		err := fmt.Errorf("uploaded file %s is not an xlsx workbook", f.Filename)
		appErr := api.NewAppError(err, api.ErrorUnsupportedFileType, api.CategoryUser)
		appErr.Message = "Unsupported file type. Please supply an xlsx file."
		return reportError(c, appErr)
	}

	content, err := io.ReadAll(f)
	if err != nil {
		err := fmt.Errorf("error reading uploaded file ... %v", err)
		return reportError(c, api.NewAppError(err, api.ErrorUnableToReadFile, api.CategoryInternal))
	}

	archiveUpload(c, f.Filename, content)

	count, err := models.ImportCountries(models.Tx(c), bytes.NewReader(content))
	if err != nil {
		return reportError(c, err)
	}

	return renderOk(c, map[string]string{
		"message": fmt.Sprintf("%d countries inserted", count),
	})
}

// archiveUpload keeps a copy of the uploaded workbook in S3. Failure is
// logged and does not block the import.
func archiveUpload(c buffalo.Context, filename string, content []byte) {
	key := fmt.Sprintf("uploads/%s_%s", domain.GetUUID(), filename)
	if _, err := storage.StoreFile(key, xlsxContentType, content); err != nil {
		domain.Error(c, "failed to archive uploaded workbook", map[string]interface{}{
			"error":    err.Error(),
			"filename": filename,
		})
	}
}
