package controller

import (
	"festival/app_error"
	"festival/repository"
	"festival/service"
	"festival/utils"
	"io"
	"strconv"
	"time"

	"github.com/gin-contrib/cache"
	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
)

const maxUploadSize = 10 << 20

type GalleryController struct {
	galleryService *service.GalleryService
	cache          persistence.CacheStore
}

func NewGalleryController(deps *Dependencies) *GalleryController {
	return &GalleryController{
		galleryService: service.NewGalleryService(deps.DB, deps.Publisher),
		cache:          deps.Cache,
	}
}

func setupGalleryController(deps *Dependencies) []RouteInfo {
	e := NewGalleryController(deps)
	return []RouteInfo{
		{Method: "GET", Path: "/gallery", HandlerFunc: cache.CachePage(e.cache, 5*time.Minute, e.getGalleryHandler())},
		{Method: "POST", Path: "/gallery", HandlerFunc: e.uploadGalleryImageHandler(), Authenticated: true, RequiredRoles: adminOnly},
		{Method: "GET", Path: "/carousel", HandlerFunc: cache.CachePage(e.cache, 5*time.Minute, e.getCarouselHandler())},
		{Method: "POST", Path: "/carousel", HandlerFunc: e.uploadCarouselImageHandler(), Authenticated: true, RequiredRoles: adminOnly},
	}
}

// @id GetGallery
// @Description Fetches gallery images, newest first
// @Tags gallery
// @Produce json
// @Param year query int false "Only images of this year"
// @Success 200 {array} GalleryImage
// @Router /gallery [get]
func (e *GalleryController) getGalleryHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var year *int
		if value := c.Query("year"); value != "" {
			parsed, err := strconv.Atoi(value)
			if err != nil {
				c.JSON(400, gin.H{"error": "year must be an integer"})
				return
			}
			year = &parsed
		}
		images, err := e.galleryService.GetGalleryImages(year)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(images, toGalleryImageResponse))
	}
}

// @id UploadGalleryImage
// @Description Uploads a gallery image
// @Tags gallery
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image"
// @Param caption formData string false "Caption"
// @Param year formData int true "Year"
// @Success 201 {object} GalleryImage
// @Router /gallery [post]
func (e *GalleryController) uploadGalleryImageHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		data, ok := readUpload(c)
		if !ok {
			return
		}
		year, err := strconv.Atoi(c.PostForm("year"))
		if err != nil {
			c.JSON(400, gin.H{"error": "year must be an integer"})
			return
		}
		image, err := e.galleryService.UploadGalleryImage(c.Request.Context(), &repository.GalleryImage{
			Caption: c.PostForm("caption"),
			Year:    year,
		}, data)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		flush(e.cache)
		c.JSON(201, toGalleryImageResponse(image))
	}
}

// @id GetCarousel
// @Description Fetches the active carousel images in display order
// @Tags gallery
// @Produce json
// @Success 200 {array} CarouselImage
// @Router /carousel [get]
func (e *GalleryController) getCarouselHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		images, err := e.galleryService.GetCarouselImages()
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, utils.Map(images, toCarouselImageResponse))
	}
}

// @id UploadCarouselImage
// @Description Uploads a carousel image
// @Tags gallery
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image"
// @Param title formData string false "Title"
// @Param order formData int false "Display order"
// @Param is_active formData bool false "Shown in the carousel, defaults to true"
// @Success 201 {object} CarouselImage
// @Router /carousel [post]
func (e *GalleryController) uploadCarouselImageHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		data, ok := readUpload(c)
		if !ok {
			return
		}
		order := 0
		if value := c.PostForm("order"); value != "" {
			parsed, err := strconv.Atoi(value)
			if err != nil {
				c.JSON(400, gin.H{"error": "order must be an integer"})
				return
			}
			order = parsed
		}
		isActive := true
		if value := c.PostForm("is_active"); value != "" {
			parsed, err := strconv.ParseBool(value)
			if err != nil {
				c.JSON(400, gin.H{"error": "is_active must be a boolean"})
				return
			}
			isActive = parsed
		}
		image, err := e.galleryService.UploadCarouselImage(c.Request.Context(), &repository.CarouselImage{
			Title:    c.PostForm("title"),
			Order:    order,
			IsActive: isActive,
		}, data)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		flush(e.cache)
		c.JSON(201, toCarouselImageResponse(image))
	}
}

func readUpload(c *gin.Context) ([]byte, bool) {
	header, err := c.FormFile("image")
	if err != nil {
		c.JSON(400, gin.H{"error": "image file is required"})
		return nil, false
	}
	if header.Size > maxUploadSize {
		c.JSON(413, gin.H{"error": "image is too large"})
		return nil, false
	}
	file, err := header.Open()
	if err != nil {
		app_error.Respond(c, err)
		return nil, false
	}
	defer file.Close()
	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		app_error.Respond(c, err)
		return nil, false
	}
	return data, true
}

type GalleryImage struct {
	Id         int       `json:"id" binding:"required"`
	Caption    string    `json:"caption"`
	Year       int       `json:"year" binding:"required"`
	ImageURL   string    `json:"image_url" binding:"required"`
	UploadedAt time.Time `json:"uploaded_at" binding:"required"`
}

func toGalleryImageResponse(image *repository.GalleryImage) *GalleryImage {
	return &GalleryImage{
		Id:         image.Id,
		Caption:    image.Caption,
		Year:       image.Year,
		ImageURL:   image.ImageURL,
		UploadedAt: image.UploadedAt,
	}
}

type CarouselImage struct {
	Id         int       `json:"id" binding:"required"`
	Title      string    `json:"title"`
	ImageURL   string    `json:"image_url" binding:"required"`
	IsActive   bool      `json:"is_active" binding:"required"`
	Order      int       `json:"order" binding:"required"`
	UploadedAt time.Time `json:"uploaded_at" binding:"required"`
}

func toCarouselImageResponse(image *repository.CarouselImage) *CarouselImage {
	return &CarouselImage{
		Id:         image.Id,
		Title:      image.Title,
		ImageURL:   image.ImageURL,
		IsActive:   image.IsActive,
		Order:      image.Order,
		UploadedAt: image.UploadedAt,
	}
}
