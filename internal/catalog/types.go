package catalog

// Catalog is the inert marketing content every variant renders, keyed by
// variant id.
type Catalog struct {
	Pages map[string]Page `yaml:"pages" validate:"required,min=1,dive,keys,required,endkeys"`
}

// Page is the copy and plan table for a single variant.
type Page struct {
	Headline     string        `yaml:"headline" validate:"required"`
	Subheadline  string        `yaml:"subheadline"`
	PopularLabel string        `yaml:"popular_label" validate:"required"`
	SavingsLabel string        `yaml:"savings_label"`
	SectionLabel string        `yaml:"section_label"`
	Rating       string        `yaml:"rating"`
	Plans        []Plan        `yaml:"plans" validate:"required,min=1,dive"`
	Yearly       []Plan        `yaml:"yearly" validate:"omitempty,dive"`
	Highlights   []Highlight   `yaml:"highlights" validate:"omitempty,dive"`
	FAQs         []FAQ         `yaml:"faqs" validate:"omitempty,dive"`
	TrustLine    string        `yaml:"trust_line"`
	Logos        []string      `yaml:"logos" validate:"omitempty,dive,required"`
	Badges       []string      `yaml:"badges" validate:"omitempty,dive,required"`
	Footnotes    []string      `yaml:"footnotes" validate:"omitempty,dive,required"`
	CallToAction *CallToAction `yaml:"call_to_action"`
}

// HasBillingToggle reports whether the page carries a yearly plan table.
func (p Page) HasBillingToggle() bool {
	return len(p.Yearly) > 0
}

// Plan is a read-only PlanOffering.
type Plan struct {
	Name          string   `yaml:"name" validate:"required"`
	Price         string   `yaml:"price" validate:"required,startswith=$"`
	OriginalPrice string   `yaml:"original_price" validate:"omitempty,startswith=$"`
	Period        string   `yaml:"period" validate:"required,startswith=/"`
	Description   string   `yaml:"description" validate:"required"`
	Features      []string `yaml:"features" validate:"required,min=1,dive,required"`
	Popular       bool     `yaml:"popular"`
	CTA           string   `yaml:"cta" validate:"required"`
	Icon          string   `yaml:"icon"`
	// Swatch lists symbolic colour tokens decorating the plan, such as a
	// gradient pair or a marker dot.
	Swatch []string `yaml:"swatch" validate:"omitempty,max=2,dive,token"`
}

// Discounted reports whether the plan shows a struck-through original price.
func (p Plan) Discounted() bool {
	return p.OriginalPrice != "" && p.OriginalPrice != p.Price
}

// Highlight is a benefit or platform feature shown beside the plans.
type Highlight struct {
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description" validate:"required"`
	Icon        string `yaml:"icon"`
}

// FAQ is a question and answer pair.
type FAQ struct {
	Question string `yaml:"question" validate:"required"`
	Answer   string `yaml:"answer" validate:"required"`
}

// CallToAction is a closing prompt with one or more button labels.
type CallToAction struct {
	Title    string   `yaml:"title" validate:"required"`
	Subtitle string   `yaml:"subtitle"`
	Actions  []string `yaml:"actions" validate:"required,min=1,dive,required"`
}
