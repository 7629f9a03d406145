package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/grocery-cli/internal/core/domain"
)

// dateLayout is the accepted input format for dates.
const dateLayout = "2006-01-02"

// maxPrice is the highest accepted unit price.
var maxPrice = decimal.RequireFromString("999.99")

// productInput holds the raw flag values for a product.
type productInput struct {
	Name      string `flag:"name" validate:"required,max=100"`
	Stock     int    `flag:"stock" validate:"gte=0"`
	ShelfLife string `flag:"shelf-life" validate:"required,datetime=2006-01-02"`
	Price     string `flag:"price" validate:"required,price"`
}

// listItemInput holds the raw arguments for a grocery list item.
type listItemInput struct {
	GroceryListID int64 `flag:"list-id" validate:"gt=0"`
	ProductID     int64 `flag:"product-id" validate:"gt=0"`
	Amount        int   `flag:"amount" validate:"gte=0"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("flag")
	})
	_ = v.RegisterValidation("price", func(fl validator.FieldLevel) bool {
		_, err := parsePrice(fl.Field().String())
		return err == nil
	})
	return v
}

// parsePrice reads a price written with either '.' or ',' as the decimal
// separator. Prices must lie between 0 and 999.99 with at most two decimals.
func parsePrice(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}

	price, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errors.New("not a number")
	}
	if price.IsNegative() || price.GreaterThan(maxPrice) {
		return decimal.Zero, errors.New("must be between 0 and 999.99")
	}
	if !price.Equal(price.Truncate(2)) {
		return decimal.Zero, errors.New("at most two decimals")
	}
	return price, nil
}

// toProduct validates the input and converts it into a domain product.
func (in productInput) toProduct() (domain.Product, error) {
	if err := validate.Struct(in); err != nil {
		return domain.Product{}, describeValidation(err)
	}

	shelfLife, err := time.Parse(dateLayout, in.ShelfLife)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%w: shelf-life: %w", domain.ErrInvalidInput, err)
	}
	price, err := parsePrice(in.Price)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%w: price: %w", domain.ErrInvalidInput, err)
	}

	return domain.NewProduct(strings.TrimSpace(in.Name), in.Stock, domain.DateOf(shelfLife), price), nil
}

// toItem validates the input and converts it into a domain list item.
func (in listItemInput) toItem() (domain.GroceryListItem, error) {
	if err := validate.Struct(in); err != nil {
		return domain.GroceryListItem{}, describeValidation(err)
	}
	return domain.NewGroceryListItem(in.GroceryListID, in.ProductID, in.Amount), nil
}

// describeValidation turns validator errors into one ErrInvalidInput.
func describeValidation(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeField(fe))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(msgs, "; "))
}

func describeField(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "gte":
		return fe.Field() + " must be 0 or more"
	case "gt":
		return fe.Field() + " must be a positive number"
	case "max":
		return fe.Field() + " is too long"
	case "datetime":
		return fe.Field() + " must be a date in yyyy-mm-dd form"
	case "price":
		return fe.Field() + " must be between 0 and 999.99 with at most two decimals"
	default:
		return fe.Field() + " is invalid"
	}
}

// stdinIsTerminal reports whether confirmation prompts can be answered.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// confirm asks a yes/no question on the terminal. With assumeYes it
// returns true without asking; without a terminal it refuses.
func confirm(cmd *cobra.Command, assumeYes bool, question string) (bool, error) {
	if assumeYes {
		return true, nil
	}
	if !stdinIsTerminal() {
		return false, fmt.Errorf("%w: not a terminal, pass --yes to confirm", domain.ErrInvalidInput)
	}

	cmd.Printf("%s [y/N]: ", question)
	answer, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && answer == "" {
		return false, nil
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes", nil
}
