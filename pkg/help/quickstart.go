package help

// QuickstartYAML is printed by the quickstart command.
const QuickstartYAML = `# quintype-seo Quick Start

config:
  default_file: "seo.yaml (read when --config is not given)"
  layering: "repeat --config; later files override scalars, seo-metadata records are appended"
  env_overrides:
    - "SEO_SITE_TITLE"
    - "SEO_CDN_NAME"
    - "SEO_SKETCHES_HOST"
    - "SEO_FACEBOOK_APP_ID"
    - "SEO_BING_APP_ID"
  example: |
    title: "My Site"
    cdn-name: "https://cdn.site.com/"
    sketches-host: "https://www.site.com"
    facebook: {app-id: "1234"}
    seo-metadata:
      - owner-type: home
        data:
          page-title: "My Site - Latest News"
          description: "News from around the world"
      - owner-type: section
        owner-id: 42
        data:
          title: "Cricket"

page_types:
  home: "config only"
  section: "--input section JSON"
  section-collection: "--input collection JSON"
  search: "--term"
  static-page: "--name page name, --title"
  story: "--input story JSON"
  card-share: "--input story JSON, optional --card card JSON"
  story-element: "--input story JSON"
  tag: "--tag tag name"

commands:
  home_tags: |
    quintype-seo tags --page home

  story_tags: |
    quintype-seo tags --page story --input story.json

  override_tags: |
    quintype-seo tags --page section --input section.json --set og:title="Cricket Live"

  tree_output: |
    quintype-seo tags --page story --input story.json --format tree

  import_metadata: |
    quintype-seo metadata import --file records.yaml
    quintype-seo metadata import --file seo.yaml --replace

  list_metadata: |
    quintype-seo metadata list --owner-type section --format yaml

  check_metadata: |
    quintype-seo metadata check

  delete_metadata: |
    quintype-seo metadata delete --owner-type section --owner-id 42

  import_story: |
    quintype-seo import-story --html article.html --url https://www.site.com/news/slug --keywords 5 > story.json
    quintype-seo tags --page story --input story.json

formats:
  html: "rendered head tags, one per line (default)"
  json: "flat tag map"
  yaml: "flat tag map"
  tree: "nested tag tree before flattening, ignores --set"

precedence:
  - "--set overrides win over everything"
  - "config seo-metadata records win over database records"
  - "the first record matching owner type and owner id is used"
  - "page-title in a record replaces the computed <title>"

error_behavior:
  - "Exit codes: 0=success, 1=usage error, 2=runtime failure"
  - "metadata check exits 2 when duplicate records are found"
`
