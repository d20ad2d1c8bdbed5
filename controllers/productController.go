package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	appconfig "github.com/sisies/sisies-api/config"
	"github.com/sisies/sisies-api/initializers"
	"github.com/sisies/sisies-api/models"
	"gorm.io/gorm"
)

func CreateProduct(ctx *gin.Context) {
	var product models.Product
	if err := ctx.ShouldBindJSON(&product); err != nil {
		respondWithError(ctx, http.StatusBadRequest, msgInvalidInput, err)
		return
	}

	if err := initializers.DB.Create(&product).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create product", err)
		return
	}

	ctx.JSON(http.StatusCreated, product)
}

func CreateProductSpecs(ctx *gin.Context) {
	var spec models.ProductSpecs
	if err := ctx.ShouldBindJSON(&spec); err != nil {
		respondWithError(ctx, http.StatusBadRequest, msgInvalidInput, err)
		return
	}

	var product models.Product
	if err := initializers.DB.First(&product, spec.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to validate product", err)
		}
		return
	}

	if err := initializers.DB.Create(&spec).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create product specifications", err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Product specs added successfully"})
}

func loadAWSConfig(region string) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(region))
}

func getAWSUploader(region string) (*manager.Uploader, error) {
	cfg, err := loadAWSConfig(region)
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return manager.NewUploader(client), nil
}

// UploadProductImages uploads multipart image files to S3 and records their
// public URLs against the product.
func UploadProductImages(awsCfg appconfig.AWSConfig) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		form, err := ctx.MultipartForm()
		if err != nil {
			respondWithError(ctx, http.StatusBadRequest, "Invalid form data", err)
			return
		}

		files := form.File["images"]
		if len(files) == 0 {
			respondWithError(ctx, http.StatusBadRequest, "No files uploaded", nil)
			return
		}

		productIdStr := ctx.PostForm("productId")
		if productIdStr == "" {
			respondWithError(ctx, http.StatusBadRequest, "Missing productId", nil)
			return
		}

		productId, err := strconv.Atoi(productIdStr)
		if err != nil {
			respondWithError(ctx, http.StatusBadRequest, "Invalid productId", err)
			return
		}

		var product models.Product
		if err := initializers.DB.First(&product, productId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
			} else {
				respondWithError(ctx, http.StatusInternalServerError, "Failed to validate product", err)
			}
			return
		}

		uploader, err := getAWSUploader(awsCfg.Region)
		if err != nil {
			respondWithError(ctx, http.StatusInternalServerError, "Failed to configure AWS", err)
			return
		}

		var uploadedUrls []string
		var failedUploads []string

		for _, file := range files {
			f, openErr := file.Open()
			if openErr != nil {
				log.Printf("Error opening file %s: %v", file.Filename, openErr)
				failedUploads = append(failedUploads, file.Filename)
				continue
			}

			// Unique key so re-uploads never overwrite each other.
			uniqueFilename := fmt.Sprintf("%d-%s-%s", productId, time.Now().Format("20060102150405"), file.Filename)

			result, uploadErr := uploader.Upload(ctx.Request.Context(), &s3.PutObjectInput{
				Bucket:      aws.String(awsCfg.Bucket),
				Key:         aws.String(uniqueFilename),
				Body:        f,
				ACL:         "public-read",
				ContentType: aws.String(file.Header.Get("Content-Type")),
			})
			f.Close()

			if uploadErr != nil {
				log.Printf("Error uploading file %s: %v", file.Filename, uploadErr)
				failedUploads = append(failedUploads, file.Filename)
				continue
			}

			uploadedUrls = append(uploadedUrls, result.Location)

			productImage := models.ProductImage{
				Url:       result.Location,
				ProductID: productId,
			}
			if err := initializers.DB.Create(&productImage).Error; err != nil {
				// The file is already on S3; record the miss and move on.
				log.Printf("Error saving image to database: %v", err)
			}
		}

		response := gin.H{
			"message": "Files processed",
			"urls":    uploadedUrls,
		}
		if len(failedUploads) > 0 {
			response["failed"] = failedUploads
		}

		ctx.JSON(http.StatusOK, response)
	}
}

func applyProductFilters(query *gorm.DB, search, category string) *gorm.DB {
	if search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}
	return query
}

func GetProducts(ctx *gin.Context) {
	var products []models.Product

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "12"))
	offset := (page - 1) * limit

	search := ctx.Query("search")
	category := ctx.Query("category")

	query := applyProductFilters(initializers.DB.Preload("Images"), search, category)

	result := query.Limit(limit).Offset(offset).Find(&products)
	if result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch products", result.Error)
		return
	}

	// The count carries the same filters as the listing so pagination
	// metadata stays truthful for searched results.
	var count int64
	applyProductFilters(initializers.DB.Model(&models.Product{}), search, category).Count(&count)

	ctx.JSON(http.StatusOK, gin.H{
		"products": products,
		"metadata": gin.H{
			"total": count,
			"page":  page,
			"limit": limit,
		},
	})
}

func GetProduct(ctx *gin.Context) {
	productId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product id", err)
		return
	}

	var product models.Product
	result := initializers.DB.
		Preload("Images").
		Preload("Specifications").
		First(&product, productId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch product", result.Error)
		}
		return
	}

	ctx.JSON(http.StatusOK, product)
}
