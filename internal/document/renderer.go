package document

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"

	"contractbot/internal/domain"
	"contractbot/internal/errors"
)

// Layout constants, millimeters from the page's top-left corner on A4.
// The document is a fixed form: every anchor below is deliberate and the
// table always reserves three bordered row slots with a single populated
// row.
const (
	pageWidth  = 210.0
	pageHeight = 297.0

	headerNameTop    = 20.0
	headerOgrnTop    = 25.0
	headerInnTop     = 30.0
	headerAddressTop = 35.0

	titleTop = 55.0
	cityTop  = 60.0
	dateLeft = 180.0

	tableHeaderTop = 70.0
	tableTop       = 72.0
	tableRowHeight = 10.0
	tableRowSlots  = 3
	tableLeft      = 10.0
	tableRight     = 200.0

	itemWrapChars    = 45
	itemFirstLineTop = 76.0
	itemContTop      = 76.5
	itemContLeading  = 2.5
	itemLeft         = 22.0

	tableCellTop  = 80.0
	sumLabelTop   = 87.0
	totalLabelTop = 97.0

	bodyTop     = 110.0
	bodyLeading = 3.81 // reportlab textLines leading for a 9pt font

	buyerTop1        = 192.0
	addrContTop1     = 206.31
	addrContLeading  = 2.5
	buyerLeft        = 130.0
	buyerLineSpacing = 5.0

	footerLabelTop1 = 192.0
	footerNameTop1  = 197.0
	footerBlockTop1 = 202.0

	badgeLeft   = 140.0
	badgeTop    = 10.0
	badgeWidth  = 60.0
	badgeHeight = 30.0

	stampLeft   = 20.0
	stampTop1   = 227.0
	stampTop2   = 147.0
	stampSize   = 50.0
	sigLeft     = 20.0
	sigTop1     = 217.0
	sigTop2     = 137.0
	sigWidth    = 40.0
	sigHeight   = 20.0

	sbpHeaderTop = 55.0
	sbpStepsTop  = 63.5
	sbpLeft      = 10.0

	footerLabelTop2 = 112.0
	footerNameTop2  = 117.0
	footerBlockTop2 = 122.0

	buyerTop2    = 112.0
	addrContTop2 = 126.94

	signatureLine = "_____________________________"
)

var tableColumns = []float64{10, 20, 90, 110, 130, 160, 200}

// Renderer produces the two-page contract PDF. It is stateless across calls;
// all inputs come from the record, the profile and the preloaded assets.
type Renderer struct {
	assets *Assets
	logger *zap.Logger
}

func NewRenderer(assets *Assets, logger *zap.Logger) *Renderer {
	return &Renderer{
		assets: assets,
		logger: logger,
	}
}

// DocumentName is the delivery file name, without extension.
func DocumentName(record domain.OrderRecord, profile domain.CompanyProfile) string {
	return fmt.Sprintf("%s. Счет-договор на поставку товара № %s", profile.Name, record.ContractNumber)
}

// Render lays the record out on two A4 pages and returns the PDF bytes.
// Any failure is a GenerationError: the caller keeps the record and may
// retry.
func (r *Renderer) Render(ctx context.Context, record domain.OrderRecord, profile domain.CompanyProfile) (*domain.RenderedDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewGenerationError("генерация отменена", err)
	}

	companyImages, ok := r.assets.company(profile.Key)
	if !ok {
		return nil, errors.NewGenerationError(fmt.Sprintf("нет изображений для компании %q", profile.Key), nil)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddUTF8FontFromBytes("FreeSans", "", r.assets.fontRegular)
	pdf.AddUTF8FontFromBytes("FreeSans", "B", r.assets.fontBold)

	pngOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("stamp", pngOpts, bytes.NewReader(companyImages.stamp))
	pdf.RegisterImageOptionsReader("qes", pngOpts, bytes.NewReader(companyImages.badge))
	pdf.RegisterImageOptionsReader("signature", pngOpts, bytes.NewReader(r.assets.signature))

	r.drawContractPage(pdf, record, profile)
	r.drawPaymentPage(pdf, record, profile)

	if pdf.Err() {
		return nil, errors.NewGenerationError("формирование документа", pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.NewGenerationError("запись документа", err)
	}

	doc := &domain.RenderedDocument{
		Name: DocumentName(record, profile),
		Data: buf.Bytes(),
	}
	r.logger.Debug("document rendered",
		zap.String("company", string(profile.Key)),
		zap.String("contractNumber", record.ContractNumber),
		zap.Int("sizeBytes", len(doc.Data)))
	return doc, nil
}

func (r *Renderer) drawContractPage(pdf *gofpdf.Fpdf, record domain.OrderRecord, profile domain.CompanyProfile) {
	pdf.AddPage()
	r.drawHeader(pdf, profile, profile.LegalAddress)

	pdf.SetFont("FreeSans", "", 9)
	pdf.Text(tableLeft, titleTop, DocumentName(record, profile))
	pdf.Text(dateLeft, titleTop, record.Date)
	pdf.Text(tableLeft, cityTop, "г. Москва")

	// Table header and grid.
	pdf.Text(10, tableHeaderTop, "№")
	pdf.Text(20, tableHeaderTop, "Наименование товара")
	pdf.Text(90, tableHeaderTop, "Единица")
	pdf.Text(110, tableHeaderTop, "Количество")
	pdf.Text(130, tableHeaderTop, "Цена в рублях")
	pdf.Text(160, tableHeaderTop, "Сумма в рублях")

	tableBottom := tableTop + tableRowSlots*tableRowHeight
	for row := 0; row <= tableRowSlots; row++ {
		y := tableTop + float64(row)*tableRowHeight
		pdf.Line(tableLeft, y, tableRight, y)
	}
	for _, x := range tableColumns {
		pdf.Line(x, tableTop, x, tableBottom)
	}

	// Single populated row; the remaining slots stay as empty bordered space.
	pdf.SetFont("FreeSans", "", 8)
	itemLines := WrapText(record.OrderedItem, itemWrapChars)
	pdf.Text(itemLeft, itemFirstLineTop, itemLines[0])
	for i, line := range itemLines[1:] {
		pdf.Text(itemLeft, itemContTop+float64(i+1)*itemContLeading, line)
	}

	total := record.TotalAmount()
	pdf.Text(12, tableCellTop, "1")
	pdf.Text(92, tableCellTop, "шт.")
	pdf.Text(112, tableCellTop, FormatThousands(record.Quantity))
	pdf.Text(132, tableCellTop, FormatThousands(record.Cost))
	pdf.Text(162, tableCellTop, FormatThousands(total))

	pdf.Text(132, sumLabelTop, "Сумма")
	pdf.Text(162, sumLabelTop, FormatThousands(total))
	pdf.Text(132, totalLabelTop, "Всего к оплате")
	pdf.Text(162, totalLabelTop, FormatThousands(total))

	// Contract clause body.
	pdf.SetFont("FreeSans", "", 9)
	for i, line := range strings.Split(profile.ContractText, "\n") {
		pdf.Text(tableLeft, bodyTop+float64(i)*bodyLeading, line)
	}

	r.drawBuyerBlock(pdf, record, buyerTop1, addrContTop1)
	r.drawSupplierBlock(pdf, profile, footerLabelTop1, footerNameTop1, footerBlockTop1)

	pdf.ImageOptions("qes", badgeLeft, badgeTop, badgeWidth, badgeHeight, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	pdf.ImageOptions("stamp", stampLeft, stampTop1, stampSize, stampSize, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	pdf.ImageOptions("signature", sigLeft, sigTop1, sigWidth, sigHeight, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
}

func (r *Renderer) drawPaymentPage(pdf *gofpdf.Fpdf, record domain.OrderRecord, profile domain.CompanyProfile) {
	pdf.AddPage()
	r.drawHeader(pdf, profile, "Юр. адрес: "+profile.LegalAddress)

	pdf.ImageOptions("qes", badgeLeft, badgeTop, badgeWidth, badgeHeight, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	pdf.SetFont("FreeSans", "", 11)
	pdf.Text(sbpLeft, sbpHeaderTop, "Реквизиты для оплаты через СБП (Система Быстрых Платежей - сервис Банка России):")

	pdf.SetFont("FreeSans", "", 9)
	for i, step := range PaymentSteps(record, profile) {
		pdf.Text(sbpLeft, sbpStepsTop+float64(i)*bodyLeading, step)
	}

	r.drawSupplierBlock(pdf, profile, footerLabelTop2, footerNameTop2, footerBlockTop2)
	r.drawBuyerBlock(pdf, record, buyerTop2, addrContTop2)

	pdf.ImageOptions("stamp", stampLeft, stampTop2, stampSize, stampSize, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
	pdf.ImageOptions("signature", sigLeft, sigTop2, sigWidth, sigHeight, false, gofpdf.ImageOptions{ImageType: "PNG"}, 0, "")
}

func (r *Renderer) drawHeader(pdf *gofpdf.Fpdf, profile domain.CompanyProfile, addressLine string) {
	pdf.SetFont("FreeSans", "B", 11)
	pdf.Text(tableLeft, headerNameTop, profile.Name)
	pdf.SetFont("FreeSans", "", 9)
	pdf.Text(tableLeft, headerOgrnTop, "ОГРН: "+profile.OGRN)
	pdf.Text(tableLeft, headerInnTop, "ИНН: "+profile.INN)
	pdf.Text(tableLeft, headerAddressTop, addressLine)
}

func (r *Renderer) drawBuyerBlock(pdf *gofpdf.Fpdf, record domain.OrderRecord, top, addrContTop float64) {
	fullName := record.FullName()
	addressLines := WrapText(record.Address, itemWrapChars)

	pdf.SetFont("FreeSans", "", 9)
	pdf.Text(buyerLeft, top, "Покупатель:")
	pdf.Text(buyerLeft, top+buyerLineSpacing, fullName)
	pdf.Text(buyerLeft, top+2*buyerLineSpacing, "Адрес: "+addressLines[0])
	for i, line := range addressLines[1:] {
		pdf.Text(buyerLeft, addrContTop+float64(i)*addrContLeading, line)
	}
	pdf.Text(buyerLeft, top+4*buyerLineSpacing, "Телефон: "+record.Phone)
	pdf.Text(buyerLeft, top+5*buyerLineSpacing, signatureLine)
	pdf.Text(buyerLeft, top+6*buyerLineSpacing, "/"+fullName+"/")
}

func (r *Renderer) drawSupplierBlock(pdf *gofpdf.Fpdf, profile domain.CompanyProfile, labelTop, nameTop, blockTop float64) {
	pdf.SetFont("FreeSans", "", 9)
	pdf.Text(tableLeft, labelTop, "Поставщик:")
	pdf.Text(tableLeft, nameTop, profile.Name)
	for i, line := range SupplierLines(profile) {
		pdf.Text(tableLeft, blockTop+float64(i)*bodyLeading, line)
	}
}

// SupplierLines builds the requisites block under the "Поставщик" label.
// The warehouse address may span multiple lines.
func SupplierLines(profile domain.CompanyProfile) []string {
	lines := []string{
		"ОГРН: " + profile.OGRN,
		"ИНН: " + profile.INN,
		"Юр. адрес: " + profile.LegalAddress,
	}
	lines = append(lines, strings.Split("Центральный склад: "+profile.CentralWarehouse, "\n")...)
	lines = append(lines, "", "", "__________________________/"+profile.ExecutorName+"/")
	return lines
}

// PaymentSteps builds the numbered SBP transfer instructions for page two.
func PaymentSteps(record domain.OrderRecord, profile domain.CompanyProfile) []string {
	return []string{
		"1. Откройте приложение или личный кабинет Вашего банка.",
		"2. Выберите: «Платежи» → «СБП» (Система Быстрых Платежей).",
		"3. Укажите корпоративный номер компании: " + record.SbpPhone,
		"4. Укажите сумму перевода: " + FormatThousands(record.TotalAmount()) + " руб.",
		"5. Получатель: " + profile.Name + ", в лице главного бухгалтера: " + record.SbpFullName,
		"6. Выберите банк: " + record.SbpBank,
		"7. Выполните перевод.",
	}
}
