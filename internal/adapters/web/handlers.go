package web

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/mahabubulhasibshawon/foodadmin/internal/application"
	"github.com/mahabubulhasibshawon/foodadmin/internal/domain"
)

// maxUploadBytes leaves room for the form fields next to the largest accepted image.
const maxUploadBytes = application.MaxImageBytes + 1<<20

type loginData struct {
	Email string
}

type listData struct {
	Foods      []domain.FoodItem
	Categories []string
	Search     string
	Category   string
	Total      int
}

type foodFormData struct {
	ID         string
	Action     string
	Draft      domain.FoodDraft
	PriceText  string
	ImageURL   string
	Categories []domain.Category
	Editing    bool
}

type ordersData struct {
	Orders   []domain.Order
	Statuses []domain.OrderStatus
}

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "login.html", "Admin Login", loginData{})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	creds := domain.Credentials{Email: r.PostFormValue("email"), Password: r.PostFormValue("password")}
	err := h.session.Login(r.Context(), creds)
	switch {
	case err == nil:
		if err := h.bindBrowser(w, r); err != nil {
			h.internalError(w, r, err)
			return
		}
		h.notices.Success("Login successful!")
		http.Redirect(w, r, application.RootPath, http.StatusSeeOther)
		return
	case errors.Is(err, domain.ErrValidation):
		h.notices.Error(err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		h.logger.Warn("login_failed", "email", creds.Email, "request_id", RequestID(r.Context()))
		h.notices.Error("Unable to login. Please try again!")
	default:
		h.logger.Error("login_error", "error", err.Error(), "request_id", RequestID(r.Context()))
		h.notices.Error("Unable to login. Please try again")
	}
	h.render(w, r, http.StatusUnauthorized, "login.html", "Admin Login", loginData{Email: creds.Email})
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.session.Logout(r.Context()); err != nil {
		h.logger.Error("logout_error", "error", err.Error(), "request_id", RequestID(r.Context()))
	}
	h.unbindBrowser(w, r)
	http.Redirect(w, r, application.LoginPath, http.StatusSeeOther)
}

// failed pushes msg unless err already ended the session, in which case the
// operator is sent to the login page.
func (h *Handler) failed(w http.ResponseWriter, r *http.Request, err error, msg string) bool {
	h.logger.Error("backend_call_failed", "path", r.URL.Path, "error", err.Error(), "request_id", RequestID(r.Context()))
	if errors.Is(err, domain.ErrNoSession) || !h.requestState(r).IsAuthenticated() {
		h.notices.Info("Session expired, please log in again")
		http.Redirect(w, r, application.LoginPath, http.StatusSeeOther)
		return true
	}
	h.notices.Error(msg)
	return false
}

func (h *Handler) listFoods(w http.ResponseWriter, r *http.Request) {
	foods, err := h.foods.ListFoods(r.Context())
	if err != nil && h.failed(w, r, err, "Error while fetching the saved foods") {
		return
	}
	search := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")
	if category == "" {
		category = domain.AllCategories
	}
	h.render(w, r, http.StatusOK, "list.html", "Food List", listData{
		Foods:      application.FilterFoods(foods, search, category),
		Categories: application.FilterCategories(foods),
		Search:     search,
		Category:   category,
		Total:      len(foods),
	})
}

func (h *Handler) addFoodPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "food_form.html", "Add Food", foodFormData{
		Action:     "/foods",
		Categories: domain.Categories,
	})
}

func (h *Handler) createFood(w http.ResponseWriter, r *http.Request) {
	draft, priceText, image, err := readFoodForm(w, r)
	if err != nil && !errors.Is(err, domain.ErrValidation) {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	form := foodFormData{Action: "/foods", Draft: draft, PriceText: priceText, Categories: domain.Categories}

	if err == nil {
		err = h.foods.CreateFood(r.Context(), draft, image)
	}
	switch {
	case err == nil:
		h.notices.Success("Food added successfully!")
		http.Redirect(w, r, "/list", http.StatusSeeOther)
		return
	case errors.Is(err, domain.ErrValidation):
		h.notices.Error(validationMessage(err))
		h.render(w, r, http.StatusUnprocessableEntity, "food_form.html", "Add Food", form)
		return
	}
	if h.failed(w, r, err, "Error while adding food") {
		return
	}
	h.render(w, r, http.StatusBadGateway, "food_form.html", "Add Food", form)
}

func (h *Handler) editFoodPage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	food, err := h.foods.GetFood(r.Context(), id)
	if err != nil {
		if h.failed(w, r, err, "Failed to fetch food details") {
			return
		}
		http.Redirect(w, r, "/list", http.StatusSeeOther)
		return
	}
	h.render(w, r, http.StatusOK, "food_form.html", "Edit Food", foodFormData{
		ID:     food.ID,
		Action: "/foods/" + food.ID,
		Draft: domain.FoodDraft{
			Name:        food.Name,
			Description: food.Description,
			Category:    food.Category,
			Price:       food.Price,
		},
		PriceText:  strconv.FormatFloat(food.Price, 'f', -1, 64),
		ImageURL:   food.ImageURL,
		Categories: domain.Categories,
		Editing:    true,
	})
}

func (h *Handler) updateFood(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	draft, priceText, image, err := readFoodForm(w, r)
	if err != nil && !errors.Is(err, domain.ErrValidation) {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	// image_url only redisplays the preview; whether a new image is needed
	// is decided from the stored item.
	form := foodFormData{
		ID: id, Action: "/foods/" + id, Draft: draft, PriceText: priceText,
		ImageURL: r.PostFormValue("image_url"), Categories: domain.Categories, Editing: true,
	}

	if err == nil {
		err = h.foods.UpdateFood(r.Context(), id, draft, image)
	}
	switch {
	case err == nil:
		h.notices.Success("Food updated successfully!")
		http.Redirect(w, r, "/list", http.StatusSeeOther)
		return
	case errors.Is(err, domain.ErrValidation):
		h.notices.Error(validationMessage(err))
		h.render(w, r, http.StatusUnprocessableEntity, "food_form.html", "Edit Food", form)
		return
	}
	if h.failed(w, r, err, "Error while updating food") {
		return
	}
	h.render(w, r, http.StatusBadGateway, "food_form.html", "Edit Food", form)
}

func (h *Handler) deleteFood(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.foods.DeleteFood(r.Context(), id); err != nil {
		if h.failed(w, r, err, "Failed to delete the food") {
			return
		}
	} else {
		h.notices.Success("Food deleted successfully")
	}
	http.Redirect(w, r, "/list", http.StatusSeeOther)
}

// listOrders refetches from the backend unless local=1 asks for the
// optimistic in-memory list, which is what a status change redirects to.
func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("local") != "1" {
		if err := h.orders.Refresh(r.Context()); err != nil && h.failed(w, r, err, "Error while fetching orders") {
			return
		}
	}
	h.render(w, r, http.StatusOK, "orders.html", "Orders", ordersData{
		Orders:   h.orders.Orders(),
		Statuses: domain.OrderStatuses,
	})
}

func (h *Handler) setOrderStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	status := domain.OrderStatus(r.PostFormValue("status"))
	if err := h.orders.SetStatus(r.Context(), id, status); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			h.notices.Error(validationMessage(err))
		} else if h.failed(w, r, err, "Failed to update order status") {
			return
		}
	}
	http.Redirect(w, r, "/orders?local=1", http.StatusSeeOther)
}

// readFoodForm parses the multipart food form. The image is nil when no file was chosen.
func readFoodForm(w http.ResponseWriter, r *http.Request) (domain.FoodDraft, string, *domain.Image, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return domain.FoodDraft{}, "", nil, &domain.ValidationError{Field: "image", Message: "Image size should be less than 5MB"}
		}
		return domain.FoodDraft{}, "", nil, err
	}
	priceText := strings.TrimSpace(r.PostFormValue("price"))
	// out-of-range and malformed input both fail the price check
	price, err := strconv.ParseFloat(priceText, 64)
	if err != nil {
		price = 0
	}
	draft := domain.FoodDraft{
		Name:        r.PostFormValue("name"),
		Description: r.PostFormValue("description"),
		Category:    r.PostFormValue("category"),
		Price:       price,
	}

	f, hdr, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return draft, priceText, nil, nil
	}
	if err != nil {
		return draft, priceText, nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, application.MaxImageBytes+1))
	if err != nil {
		return draft, priceText, nil, err
	}
	if len(data) == 0 && hdr.Filename == "" {
		return draft, priceText, nil, nil
	}
	return draft, priceText, &domain.Image{
		Filename:    hdr.Filename,
		ContentType: hdr.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func validationMessage(err error) string {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	return err.Error()
}
