package catalog

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gyanbakery/storefront/internal/media"
)

// Confirmer answers the delete prompt.
type Confirmer interface {
	Confirm(prompt string) bool
}

// SaveInput carries the product form fields. A zero ID means create.
type SaveInput struct {
	ID          int64
	Name        string
	Category    string
	Price       int
	Description string
	ImageURL    string
	Upload      *media.Upload
}

const (
	SortNone = "none"
	SortLow  = "low"
	SortHigh = "high"
)

type Controller struct {
	repo    Repository
	decoder media.Decoder
	confirm Confirmer
	log     *logrus.Entry
}

func NewController(repo Repository, decoder media.Decoder, confirm Confirmer, log *logrus.Entry) *Controller {
	return &Controller{
		repo:    repo,
		decoder: decoder,
		confirm: confirm,
		log:     log,
	}
}

func (c *Controller) List() []Product {
	return c.repo.List()
}

// Browse is the storefront listing: optional category filter,
// case-insensitive name search, price sort.
func (c *Controller) Browse(category, search, sortOrder string) []Product {
	all := c.repo.List()

	filtered := make([]Product, 0, len(all))
	for _, p := range all {
		if category != "" && p.Category != category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(search)) {
			continue
		}
		filtered = append(filtered, p)
	}

	switch sortOrder {
	case SortLow:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price < filtered[j].Price })
	case SortHigh:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price > filtered[j].Price })
	}

	return filtered
}

func (c *Controller) Featured() []Product {
	return c.Browse("cakes", "", SortNone)
}

// Save creates or edits a product. Editing without a new image keeps
// the one already stored; a brand-new product without one gets the
// placeholder.
func (c *Controller) Save(ctx context.Context, in SaveInput) (Product, error) {
	previous := ""
	fallback := placeholderImage

	if in.ID != 0 {
		existing, ok := c.repo.Find(in.ID)
		if !ok {
			return Product{}, errProductNotFound
		}
		previous = existing.Image
	}

	image, err := media.ResolveImage(ctx, c.decoder, in.Upload, in.ImageURL, previous, fallback)
	if err != nil {
		c.log.Debugf("Save: image resolution aborted - %v", err)
		return Product{}, err
	}

	p := Product{
		ID:          in.ID,
		Name:        in.Name,
		Category:    in.Category,
		Price:       in.Price,
		Description: in.Description,
		Image:       image,
	}
	if p.ID == 0 {
		p.ID = time.Now().UnixMilli()
	}

	c.repo.Save(p)
	return p, nil
}

func (c *Controller) Delete(id int64) bool {
	if !c.confirm.Confirm("Delete this product?") {
		return false
	}
	return c.repo.Delete(id)
}
