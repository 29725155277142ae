package sitemapService

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"net/url"

	blogs "ManhwaCatalog/internal/api/blog"
	"ManhwaCatalog/internal/api/sitemap"
	contextPkg "ManhwaCatalog/pkg/context"
	"ManhwaCatalog/pkg/redis"
	"ManhwaCatalog/pkg/response"
	"ManhwaCatalog/pkg/utils"

	"github.com/sirupsen/logrus"
)

// Generate returns the sitemap document, from cache when possible. Cache
// failures are logged and fall through to a fresh build.
func (s *sitemapService) Generate(ctx context.Context) ([]byte, error) {
	requestID := contextPkg.GetRequestID(ctx)

	cached, err := s.cache.Get(ctx, cacheKey)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, redis.ErrCacheMiss) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Sitemap cache read failed")
	}

	urlSet, err := s.build(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(urlSet); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to encode sitemap")
		return nil, response.WithCause(sitemap.ErrBuildSitemap, err)
	}
	buf.WriteByte('\n')

	if err := s.cache.Set(ctx, cacheKey, buf.Bytes(), s.cacheTTL); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Sitemap cache write failed")
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"urls":       len(urlSet.URLs),
	}).Info("Sitemap generated")

	return buf.Bytes(), nil
}

func (s *sitemapService) Invalidate(ctx context.Context) error {
	return s.cache.Delete(ctx, cacheKey)
}

func (s *sitemapService) build(ctx context.Context) (sitemap.URLSet, error) {
	requestID := contextPkg.GetRequestID(ctx)
	fail := func(what string, err error) (sitemap.URLSet, error) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to load " + what + " for sitemap")
		return sitemap.URLSet{}, response.WithCause(sitemap.ErrBuildSitemap, err)
	}

	manhwaClient, err := s.manhwaRepo.NewClient(false)
	if err != nil {
		return fail("categories", err)
	}
	categories, err := manhwaClient.Manhwas.GetAllCategories(ctx)
	if err != nil {
		return fail("categories", err)
	}

	blogClient, err := s.blogRepo.NewClient(false)
	if err != nil {
		return fail("blogs", err)
	}
	blogList, err := blogClient.Blogs.GetAllBlogs(ctx)
	if err != nil {
		return fail("blogs", err)
	}

	listClient, err := s.listRepo.NewClient(false)
	if err != nil {
		return fail("lists", err)
	}
	allLists, err := listClient.Lists.GetAllLists(ctx)
	if err != nil {
		return fail("lists", err)
	}

	urlSet := sitemap.URLSet{Xmlns: sitemap.Namespace}
	add := func(path, changeFreq, priority string) {
		urlSet.URLs = append(urlSet.URLs, sitemap.URL{
			Loc:        s.siteURL + path,
			ChangeFreq: changeFreq,
			Priority:   priority,
		})
	}

	add("/", "daily", "1.0")
	add("/blogs", "weekly", "0.8")
	for _, token := range utils.CategoryTokens(categories) {
		add("/category/"+url.PathEscape(token), "weekly", "0.7")
	}
	for _, blog := range blogList {
		add(blogs.CanonicalPath(blog.ID, url.PathEscape(utils.BlogSlug(blog.Title))), "monthly", "0.6")
	}
	for _, list := range allLists {
		if list.Slug == "" {
			continue
		}
		add("/list/"+url.PathEscape(list.Slug), "monthly", "0.5")
	}

	return urlSet, nil
}
