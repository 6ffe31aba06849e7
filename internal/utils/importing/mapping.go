package importing

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/backoffice_app/internal/core/domain"
	"github.com/SscSPs/backoffice_app/internal/utils/currency"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Column aliases by target field, most specific first. Keys are folded with normalizeKey.
var (
	serviceNameAliases = []string{"service_name", "name", "serviceName", "service", "title"}
	providerAliases    = []string{"provider", "vendor", "company", "supplier"}
	amountAliases      = []string{"amount", "cost", "price", "total"}
	currencyAliases    = []string{"currency", "currency_code"}
	cycleAliases       = []string{"billing_cycle", "cycle", "frequency", "billing"}
	customDaysAliases  = []string{"custom_cycle_days", "cycle_days", "custom_days"}
	startDateAliases   = []string{"start_date", "started_on", "start"}
	renewalDateAliases = []string{"next_renewal_date", "renewal_date", "renewal", "next_renewal"}
	renewalAmtAliases  = []string{"next_renewal_amount", "renewal_amount"}
	statusAliases      = []string{"status", "state"}
	autoRenewAliases   = []string{"auto_renew", "autorenew"}
	notesAliases       = []string{"notes", "note", "description", "comments"}
	paymentSvcAliases  = []string{"service_name", "service", "serviceName", "subscription"}
	paymentDateAliases = []string{"payment_date", "date", "paid_on", "paid_date"}
	methodAliases      = []string{"payment_method", "method"}
	referenceAliases   = []string{"reference", "invoice", "invoice_number", "transaction_id", "ref"}
	vendorNameAliases  = []string{"name", "vendor_name", "vendor", "company", "supplier", "company_name"}
	contactAliases     = []string{"contact_person", "contact", "contact_name"}
	emailAliases       = []string{"email", "email_address"}
	phoneAliases       = []string{"phone", "phone_number", "mobile"}
	websiteAliases     = []string{"website", "url", "web"}
	addressAliases     = []string{"address"}
	activeAliases      = []string{"is_active", "active"}
)

var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006/01/02", "01/02/2006", "02-01-2006", "Jan 2, 2006"}

var validate = validator.New()

// ServiceNameResolver maps a service name onto the ID of an existing service.
type ServiceNameResolver func(name string) (string, bool)

type rowError struct {
	row     int
	reason  string
	columns []string
}

func (e *rowError) Error() string {
	return fmt.Sprintf("Row %d: %s. Available columns: %s", e.row, e.reason, strings.Join(e.columns, ", "))
}

func failRow(rowNum int, row Row, format string, args ...any) error {
	return &rowError{row: rowNum, reason: fmt.Sprintf(format, args...), columns: row.Columns()}
}

// lookup returns the first non-empty value among aliases.
func (r Row) lookup(aliases []string) (string, bool) {
	folded := make(map[string]string, len(r))
	for k, v := range r {
		folded[normalizeKey(k)] = v
	}
	for _, a := range aliases {
		if v, ok := folded[normalizeKey(a)]; ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v), true
		}
	}
	return "", false
}

func (r Row) value(aliases []string) string {
	v, _ := r.lookup(aliases)
	return v
}

type serviceRow struct {
	ServiceName string `validate:"required,max=255"`
	Provider    string `validate:"required,max=255"`
	Currency    string `validate:"len=3,alpha"`
}

// MapServiceRow maps row onto a Service. rowNum is 1-based and only used in error messages.
func MapServiceRow(rowNum int, row Row) (domain.Service, error) {
	name, ok := row.lookup(serviceNameAliases)
	if !ok {
		return domain.Service{}, failRow(rowNum, row, "missing service_name")
	}
	provider, ok := row.lookup(providerAliases)
	if !ok {
		return domain.Service{}, failRow(rowNum, row, "missing provider")
	}

	svc := domain.Service{
		ServiceName:  name,
		Provider:     provider,
		Currency:     currencyOrDefault(row),
		BillingCycle: domain.Monthly,
		Status:       domain.ServiceActive,
		Notes:        row.value(notesAliases),
	}
	if err := validate.Struct(serviceRow{ServiceName: svc.ServiceName, Provider: svc.Provider, Currency: svc.Currency}); err != nil {
		return domain.Service{}, failRow(rowNum, row, "invalid value: %s", describe(err))
	}

	var err error
	if svc.Amount, err = parseAmount(row.value(amountAliases)); err != nil {
		return domain.Service{}, failRow(rowNum, row, "invalid amount %q", row.value(amountAliases))
	}
	if v, ok := row.lookup(cycleAliases); ok {
		cycle, ok := ParseBillingCycle(v)
		if !ok {
			return domain.Service{}, failRow(rowNum, row, "unknown billing_cycle %q", v)
		}
		svc.BillingCycle = cycle
	}
	if v, ok := row.lookup(customDaysAliases); ok {
		days, convErr := strconv.Atoi(v)
		if convErr != nil || days <= 0 {
			return domain.Service{}, failRow(rowNum, row, "invalid custom_cycle_days %q", v)
		}
		svc.CustomCycleDays = &days
	}
	if svc.BillingCycle == domain.CustomDays && svc.CustomCycleDays == nil {
		return domain.Service{}, failRow(rowNum, row, "custom_cycle_days is required for Custom_days billing")
	}
	if svc.StartDate, err = optionalDate(row, startDateAliases); err != nil {
		return domain.Service{}, failRow(rowNum, row, "%s", err.Error())
	}
	if svc.NextRenewalDate, err = optionalDate(row, renewalDateAliases); err != nil {
		return domain.Service{}, failRow(rowNum, row, "%s", err.Error())
	}
	if v, ok := row.lookup(renewalAmtAliases); ok {
		amt, convErr := decimal.NewFromString(v)
		if convErr != nil {
			return domain.Service{}, failRow(rowNum, row, "invalid next_renewal_amount %q", v)
		}
		svc.NextRenewalAmount = &amt
	}
	if v, ok := row.lookup(statusAliases); ok {
		status, ok := parseServiceStatus(v)
		if !ok {
			return domain.Service{}, failRow(rowNum, row, "unknown status %q", v)
		}
		svc.Status = status
	}
	if v, ok := row.lookup(autoRenewAliases); ok {
		svc.AutoRenew = parseBool(v)
	}
	return svc, nil
}

// MapPaymentRow maps row onto a Payment, resolving the service by name.
func MapPaymentRow(rowNum int, row Row, resolve ServiceNameResolver, now time.Time) (domain.Payment, error) {
	name, ok := row.lookup(paymentSvcAliases)
	if !ok {
		return domain.Payment{}, failRow(rowNum, row, "missing service_name")
	}
	serviceID, ok := resolve(name)
	if !ok {
		return domain.Payment{}, failRow(rowNum, row, "no service named %q", name)
	}
	rawAmount, ok := row.lookup(amountAliases)
	if !ok {
		return domain.Payment{}, failRow(rowNum, row, "missing amount")
	}
	amount, err := parseAmount(rawAmount)
	if err != nil {
		return domain.Payment{}, failRow(rowNum, row, "invalid amount %q", rawAmount)
	}

	p := domain.Payment{
		ServiceID:     serviceID,
		Amount:        amount,
		Currency:      currencyOrDefault(row),
		PaymentDate:   now,
		PaymentMethod: row.value(methodAliases),
		Reference:     row.value(referenceAliases),
		Status:        domain.PaymentPaid,
		Notes:         row.value(notesAliases),
	}
	if err := validate.Var(p.Currency, "len=3,alpha"); err != nil {
		return domain.Payment{}, failRow(rowNum, row, "invalid currency %q", p.Currency)
	}
	paid, err := optionalDate(row, paymentDateAliases)
	if err != nil {
		return domain.Payment{}, failRow(rowNum, row, "%s", err.Error())
	}
	if paid != nil {
		p.PaymentDate = *paid
	}
	if v, ok := row.lookup(statusAliases); ok {
		status := domain.PaymentStatus(titleCase(v))
		if !status.IsValid() {
			return domain.Payment{}, failRow(rowNum, row, "unknown status %q", v)
		}
		p.Status = status
	}
	return p, nil
}

type vendorRow struct {
	Name    string `validate:"required,max=255"`
	Email   string `validate:"omitempty,email"`
	Website string `validate:"omitempty,max=512"`
}

// MapVendorRow maps row onto a Vendor.
func MapVendorRow(rowNum int, row Row) (domain.Vendor, error) {
	name, ok := row.lookup(vendorNameAliases)
	if !ok {
		return domain.Vendor{}, failRow(rowNum, row, "missing name")
	}
	v := domain.Vendor{
		Name:          name,
		ContactPerson: row.value(contactAliases),
		Email:         row.value(emailAliases),
		Phone:         row.value(phoneAliases),
		Website:       row.value(websiteAliases),
		Address:       row.value(addressAliases),
		Notes:         row.value(notesAliases),
		IsActive:      true,
	}
	if err := validate.Struct(vendorRow{Name: v.Name, Email: v.Email, Website: v.Website}); err != nil {
		return domain.Vendor{}, failRow(rowNum, row, "invalid value: %s", describe(err))
	}
	if raw, ok := row.lookup(activeAliases); ok {
		v.IsActive = parseBool(raw)
	}
	return v, nil
}

// ParseBillingCycle accepts the canonical cycle names and common spellings.
func ParseBillingCycle(s string) (domain.BillingCycle, bool) {
	switch normalizeKey(s) {
	case "monthly", "month":
		return domain.Monthly, true
	case "quarterly", "quarter":
		return domain.Quarterly, true
	case "semiannual", "semiannually", "halfyearly", "biannual":
		return domain.SemiAnnual, true
	case "annual", "annually", "yearly", "year":
		return domain.Annual, true
	case "customdays", "custom":
		return domain.CustomDays, true
	}
	return "", false
}

func parseServiceStatus(s string) (domain.ServiceStatus, bool) {
	status := domain.ServiceStatus(titleCase(s))
	if status == "Canceled" {
		status = domain.ServiceCancelled
	}
	return status, status.IsValid()
}

func currencyOrDefault(row Row) string {
	if v, ok := row.lookup(currencyAliases); ok {
		return currency.Normalize(v)
	}
	return domain.USD
}

// parseAmount accepts plain numbers with optional thousands separators and a leading currency symbol.
func parseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	s = strings.TrimLeft(s, "$€£₹¥")
	s = strings.ReplaceAll(s, ",", "")
	return decimal.NewFromString(strings.TrimSpace(s))
}

func optionalDate(row Row, aliases []string) (*time.Time, error) {
	raw, ok := row.lookup(aliases)
	if !ok {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid date %q", raw)
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "y", "1", "active":
		return true
	}
	return false
}

func titleCase(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func describe(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
