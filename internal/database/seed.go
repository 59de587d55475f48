package database

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/christinsong/hymnal/internal/config"
	"github.com/christinsong/hymnal/internal/entities"
)

var defaultCategories = []entities.Category{
	{Name: "Worship and Praise", Description: "Hymns focused on worship and praise to God"},
	{Name: "Prayer", Description: "Hymns about prayer and communion with God"},
	{Name: "Faith and Trust", Description: "Hymns about faith, trust, and reliance on God"},
	{Name: "Love of God", Description: "Hymns celebrating God's love"},
	{Name: "Salvation", Description: "Hymns about salvation and redemption"},
	{Name: "Second Coming", Description: "Hymns about Christ's return"},
	{Name: "Christian Life", Description: "Hymns about daily Christian living"},
	{Name: "Service", Description: "Hymns about service to God and others"},
	{Name: "Comfort and Peace", Description: "Hymns offering comfort and peace"},
	{Name: "Heaven", Description: "Hymns about heaven and eternal life"},
	{Name: "Gospel Invitation", Description: "Hymns extending gospel invitation"},
	{Name: "Testimony", Description: "Hymns of personal testimony"},
	{Name: "Nature", Description: "Hymns about God's creation"},
	{Name: "Christmas", Description: "Christmas hymns"},
	{Name: "Easter", Description: "Easter hymns"},
	{Name: "Special Occasions", Description: "Hymns for special occasions"},
}

type sampleHymn struct {
	hymn     entities.Hymn
	category string
}

var sampleHymns = []sampleHymn{
	{
		category: "Worship and Praise",
		hymn: entities.Hymn{
			Number: 1,
			Title:  "Holy, Holy, Holy",
			Verses: `1. Holy, holy, holy! Lord God Almighty!
Early in the morning our song shall rise to Thee;
Holy, holy, holy! Merciful and mighty!
God in three Persons, blessèd Trinity!

2. Holy, holy, holy! All the saints adore Thee,
Casting down their golden crowns around the glassy sea;
Cherubim and seraphim falling down before Thee,
Which wert, and art, and evermore shalt be.

3. Holy, holy, holy! Though the darkness hide Thee,
Though the eye of sinful man Thy glory may not see,
Only Thou art holy; there is none beside Thee
Perfect in power, in love, and purity.

4. Holy, holy, holy! Lord God Almighty!
All Thy works shall praise Thy name in earth and sky and sea;
Holy, holy, holy! Merciful and mighty!
God in three Persons, blessèd Trinity!`,
			Author:             "Reginald Heber",
			Composer:           "John B. Dykes",
			Year:               1826,
			ScriptureReference: "Revelation 4:8",
		},
	},
	{
		category: "Salvation",
		hymn: entities.Hymn{
			Number: 2,
			Title:  "Amazing Grace",
			Verses: `1. Amazing grace! How sweet the sound
That saved a wretch like me!
I once was lost, but now am found,
Was blind, but now I see.

2. 'Twas grace that taught my heart to fear,
And grace my fears relieved;
How precious did that grace appear
The hour I first believed!

3. Through many dangers, toils and snares,
I have already come;
'Tis grace hath brought me safe thus far,
And grace will lead me home.

4. When we've been there ten thousand years,
Bright shining as the sun,
We've no less days to sing God's praise
Than when we'd first begun.`,
			Author:             "John Newton",
			Composer:           "Traditional",
			Year:               1779,
			ScriptureReference: "Ephesians 2:8",
		},
	},
	{
		category: "Prayer",
		hymn: entities.Hymn{
			Number: 3,
			Title:  "What a Friend We Have in Jesus",
			Verses: `1. What a friend we have in Jesus,
All our sins and griefs to bear!
What a privilege to carry
Everything to God in prayer!
O what peace we often forfeit,
O what needless pain we bear,
All because we do not carry
Everything to God in prayer!

2. Have we trials and temptations?
Is there trouble anywhere?
We should never be discouraged;
Take it to the Lord in prayer.
Can we find a friend so faithful
Who will all our sorrows share?
Jesus knows our every weakness;
Take it to the Lord in prayer.

3. Are we weak and heavy laden,
Cumbered with a load of care?
Precious Savior, still our refuge,
Take it to the Lord in prayer.
Do thy friends despise, forsake thee?
Take it to the Lord in prayer!
In His arms He'll take and shield thee;
Thou wilt find a solace there.`,
			Author:             "Joseph M. Scriven",
			Composer:           "Charles C. Converse",
			Year:               1855,
			ScriptureReference: "John 15:15",
		},
	},
}

var defaultSettings = []entities.Setting{
	{Key: entities.SettingKeyTheme, Value: "light", Description: "Application theme (light/dark)"},
	{Key: entities.SettingKeyFontSize, Value: "12", Description: "Default font size for hymn display"},
	{Key: entities.SettingKeyShowHymnNumbers, Value: "true", Description: "Show hymn numbers in lists"},
	{Key: entities.SettingKeyAutoBackup, Value: "true", Description: "Automatic backup enabled"},
	{Key: entities.SettingKeyBackupFrequency, Value: "7", Description: "Backup frequency in days"},
	{Key: entities.SettingKeyPresentationFontSize, Value: "24", Description: "Font size for presentation mode"},
	{Key: entities.SettingKeyRecentHymnsLimit, Value: "50", Description: "Number of recent hymns to keep"},
}

func (d *Database) seed() error {
	if err := d.seedCategories(); err != nil {
		return err
	}
	if err := d.seedHymns(); err != nil {
		return err
	}
	if err := d.seedSettings(); err != nil {
		return err
	}
	return d.seedMetadata()
}

func (d *Database) seedCategories() error {
	for _, category := range defaultCategories {
		var existing entities.Category
		result := d.DB.Where("name = ?", category.Name).First(&existing)
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			if err := d.DB.Create(&category).Error; err != nil {
				return fmt.Errorf("failed to create category %s: %w", category.Name, err)
			}
		} else if result.Error != nil {
			return result.Error
		}
	}
	return nil
}

// seedHymns inserts the sample hymns only into an empty hymn table. After a
// real hymnal import the table is non-empty and samples stay out.
func (d *Database) seedHymns() error {
	var count int64
	if err := d.DB.Model(&entities.Hymn{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, sample := range sampleHymns {
		hymn := sample.hymn

		var category entities.Category
		if err := d.DB.Where("name = ?", sample.category).First(&category).Error; err == nil {
			hymn.CategoryID = category.ID
		}

		if err := d.DB.Create(&hymn).Error; err != nil {
			return fmt.Errorf("failed to create sample hymn %d: %w", hymn.Number, err)
		}
	}

	log.Info().Int("count", len(sampleHymns)).Msg("seeded sample hymns")
	return nil
}

func (d *Database) seedSettings() error {
	for _, setting := range defaultSettings {
		var existing entities.Setting
		result := d.DB.Where("key = ?", setting.Key).First(&existing)
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			if err := d.DB.Create(&setting).Error; err != nil {
				return fmt.Errorf("failed to create setting %s: %w", setting.Key, err)
			}
		} else if result.Error != nil {
			return result.Error
		}
	}
	return nil
}

func (d *Database) seedMetadata() error {
	rows := []entities.Metadata{
		{Key: entities.MetadataKeyVersion, Value: config.Version},
		{Key: entities.MetadataKeyCreatedAt, Value: time.Now().UTC().Format(time.RFC3339)},
	}
	for _, row := range rows {
		var existing entities.Metadata
		result := d.DB.Where("key = ?", row.Key).First(&existing)
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			if err := d.DB.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to create metadata %s: %w", row.Key, err)
			}
		} else if result.Error != nil {
			return result.Error
		}
	}
	return nil
}
