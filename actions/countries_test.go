package actions

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/gobuffalo/httptest"
	"github.com/xuri/excelize/v2"

	"github.com/silverleaf-labs/persons-api/models"
)

func (as *ActionSuite) Test_countriesList() {
	f := models.CreateCountryFixtures(as.DB, 3)

	res := as.JSON("/countries").Get()
	as.Equal(http.StatusOK, res.Code)

	body := res.Body.String()
	for _, country := range f.Countries {
		as.Contains(body, country.Name)
	}
}

func (as *ActionSuite) Test_countriesUploadForm() {
	res := as.JSON("/countries/uploadfromexcel").Get()
	as.Equal(http.StatusOK, res.Code)
	as.Contains(res.Body.String(), uploadFieldName)
	as.Contains(res.Body.String(), ".xlsx")
}

func (as *ActionSuite) Test_countriesUploadFromExcel() {
	existing := models.CreateCountryFixtures(as.DB, 1).Countries[0]

	tests := []struct {
		name        string
		file        *httptest.File
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "no file",
			file:        nil,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Please supply an xlsx file",
		},
		{
			name: "empty file",
			file: &httptest.File{
				ParamName: uploadFieldName,
				FileName:  "countries.xlsx",
				Reader:    bytes.NewReader(nil),
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Please supply an xlsx file",
		},
		{
			name: "wrong extension",
			file: &httptest.File{
				ParamName: uploadFieldName,
				FileName:  "countries.txt",
				Reader:    bytes.NewReader([]byte("Norway")),
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Unsupported file type. Please supply an xlsx file.",
		},
		{
			name: "valid workbook",
			file: &httptest.File{
				ParamName: uploadFieldName,
				FileName:  "countries.xlsx",
				Reader:    as.countriesWorkbook(existing.Name, "Sweden", "Denmark"),
			},
			wantStatus:  http.StatusOK,
			wantMessage: "2 countries inserted",
		},
	}

	for _, tt := range tests {
		as.T().Run(tt.name, func(t *testing.T) {
			req := as.HTML("/countries/uploadfromexcel")

			var res *httptest.Response
			var err error
			if tt.file == nil {
				res, err = req.MultiPartPost(map[string]string{})
			} else {
				res, err = req.MultiPartPost(map[string]string{}, *tt.file)
			}
			as.NoError(err)

			as.Equal(tt.wantStatus, res.Code, "incorrect status code returned: %d\n%s", res.Code, res.Body.String())
			as.Contains(res.Body.String(), tt.wantMessage)
		})
	}

	all, err := models.CountriesAll(as.DB)
	as.NoError(err)
	as.Len(all, 3, "the duplicate is skipped, the two new names are inserted")
}

// countriesWorkbook builds an in-memory xlsx with a Countries sheet, a header
// row, and one row per given name
func (as *ActionSuite) countriesWorkbook(names ...string) *bytes.Reader {
	workbook := excelize.NewFile()
	_, err := workbook.NewSheet(models.ImportSheetName)
	as.NoError(err)

	cell, _ := excelize.CoordinatesToCellName(1, 1)
	as.NoError(workbook.SetCellValue(models.ImportSheetName, cell, "CountryName"))
	for i, name := range names {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		as.NoError(workbook.SetCellValue(models.ImportSheetName, cell, name))
	}

	buf, err := workbook.WriteToBuffer()
	as.NoError(err)
	return bytes.NewReader(buf.Bytes())
}
