package library

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"curator/internal/logging"
	"curator/internal/services"
)

// PublishCollection replaces any same-named collection in the configured
// section with one built from the given items, pins it to the top of the
// section via a "!" sort title, and promotes it to the owner and shared home
// screens. Sort-title and promotion failures are logged rather than
// returned: the collection already exists at that point.
func (c *Client) PublishCollection(ctx context.Context, name string, items []Item) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return services.Wrap(services.ErrValidation, "library", "publish collection", "collection name required", nil)
	}
	keys := make([]string, 0, len(items))
	for _, item := range items {
		if item.RatingKey == "" {
			continue
		}
		keys = append(keys, item.RatingKey)
	}
	if len(keys) == 0 {
		return services.Wrap(services.ErrValidation, "library", "publish collection", "no items with rating keys", nil)
	}

	sectionKey, err := c.resolveSectionKey(ctx)
	if err != nil {
		return err
	}

	c.deleteExisting(ctx, sectionKey, name)

	machineID, err := c.machineIdentifier(ctx)
	if err != nil {
		return err
	}

	collectionKey, err := c.createCollection(ctx, sectionKey, machineID, name, keys)
	if err != nil {
		return err
	}
	if collectionKey == "" {
		c.logger.Warn("collection created but could not be retrieved",
			logging.String("collection", name))
		return nil
	}

	if err := c.setSortTitle(ctx, sectionKey, collectionKey, "!"+name); err != nil {
		c.logger.Warn("collection sort title update failed",
			logging.String("collection", name),
			logging.Error(err))
		return nil
	}
	if err := c.promote(ctx, sectionKey, collectionKey); err != nil {
		c.logger.Warn("collection promotion failed",
			logging.String("collection", name),
			logging.Error(err))
		return nil
	}

	c.logger.Info("collection published",
		logging.String("collection", name),
		logging.Int("items", len(keys)))
	return nil
}

// deleteExisting removes a same-named collection when one exists. Failures
// are logged and ignored so a stale collection never blocks publication.
func (c *Client) deleteExisting(ctx context.Context, sectionKey, name string) {
	key, err := c.findCollection(ctx, sectionKey, name)
	if err != nil {
		c.logger.Warn("existing collection check failed",
			logging.String("collection", name),
			logging.Error(err))
		return
	}
	if key == "" {
		return
	}
	c.logger.Info("deleting existing collection", logging.String("collection", name))

	resp, err := c.do(ctx, http.MethodDelete, "/library/collections/"+key, nil)
	if err != nil {
		c.logger.Warn("existing collection delete failed",
			logging.String("collection", name),
			logging.Error(err))
		return
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode >= 300 {
		c.logger.Warn("existing collection delete failed",
			logging.String("collection", name),
			logging.Int("status", resp.StatusCode))
	}
}

// findCollection returns the rating key of the section collection with the
// given title, or "" when none matches.
func (c *Client) findCollection(ctx context.Context, sectionKey, name string) (string, error) {
	var payload metadataPayload
	if err := c.getJSON(ctx, "/library/sections/"+sectionKey+"/collections", nil, &payload); err != nil {
		return "", err
	}
	for _, entry := range payload.MediaContainer.Metadata {
		if entry.Title == name {
			return entry.RatingKey, nil
		}
	}
	return "", nil
}

// createCollection posts the new collection and returns its rating key. The
// key is read from the creation response, falling back to a collection
// lookup when the server returns an unexpected body.
func (c *Client) createCollection(ctx context.Context, sectionKey, machineID, name string, ratingKeys []string) (string, error) {
	params := url.Values{}
	params.Set("type", movieType)
	params.Set("title", name)
	params.Set("smart", "0")
	params.Set("sectionId", sectionKey)
	params.Set("uri", fmt.Sprintf("server://%s/com.plexapp.plugins.library/library/metadata/%s",
		machineID, strings.Join(ratingKeys, ",")))

	resp, err := c.do(ctx, http.MethodPost, "/library/collections", params)
	if err != nil {
		return "", fmt.Errorf("create collection: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("library collection create returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload metadataPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		if entries := payload.MediaContainer.Metadata; len(entries) > 0 && entries[0].RatingKey != "" {
			return entries[0].RatingKey, nil
		}
	}
	key, err := c.findCollection(ctx, sectionKey, name)
	if err != nil {
		c.logger.Warn("created collection lookup failed",
			logging.String("collection", name),
			logging.Error(err))
		return "", nil
	}
	return key, nil
}

func (c *Client) setSortTitle(ctx context.Context, sectionKey, collectionKey, sortTitle string) error {
	params := url.Values{}
	params.Set("type", collectionType)
	params.Set("id", collectionKey)
	params.Set("titleSort.value", sortTitle)
	params.Set("titleSort.locked", "1")

	resp, err := c.do(ctx, http.MethodPut, "/library/sections/"+sectionKey+"/all", params)
	if err != nil {
		return fmt.Errorf("update sort title: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode >= 300 {
		return fmt.Errorf("library sort title update returned %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) promote(ctx context.Context, sectionKey, collectionKey string) error {
	params := url.Values{}
	params.Set("metadataItemId", collectionKey)
	params.Set("promotedToOwnHome", "1")
	params.Set("promotedToSharedHome", "1")

	resp, err := c.do(ctx, http.MethodPost, "/hubs/sections/"+sectionKey+"/manage", params)
	if err != nil {
		return fmt.Errorf("promote collection: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode >= 300 {
		return fmt.Errorf("library promotion returned %d", resp.StatusCode)
	}
	return nil
}
